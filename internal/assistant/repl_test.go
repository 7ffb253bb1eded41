package assistant_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"hr-assistant/internal/assistant"

	"github.com/stretchr/testify/assert"
)

func TestRunREPL_ExitWordsEndSession(t *testing.T) {
	for _, word := range []string{"exit", "quit", "bye"} {
		svc := &fakeAssistantService{
			HandleFn: func(context.Context, string, string) (string, error) {
				t.Fatal("exit words must not reach the service")
				return "", nil
			},
		}
		var out bytes.Buffer

		err := assistant.RunREPL(context.Background(), svc, strings.NewReader(word+"\n"), &out)

		assert.NoError(t, err)
		assert.Contains(t, out.String(), "Goodbye!")
	}
}

func TestRunREPL_OversizedLineIsOneTurn(t *testing.T) {
	long := strings.Repeat("a", 200*1024)
	var got string
	svc := &fakeAssistantService{
		HandleFn: func(_ context.Context, _ string, utterance string) (string, error) {
			got = utterance
			return "noted", nil
		},
	}
	var out bytes.Buffer

	err := assistant.RunREPL(context.Background(), svc, strings.NewReader(long+"\nexit\n"), &out)

	assert.NoError(t, err)
	assert.Equal(t, long, got)
	assert.Contains(t, out.String(), "noted")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestRunREPL_BlankLinesAreSkipped(t *testing.T) {
	svc := &fakeAssistantService{
		HandleFn: func(context.Context, string, string) (string, error) {
			t.Fatal("blank lines must not reach the service")
			return "", nil
		},
	}
	var out bytes.Buffer

	err := assistant.RunREPL(context.Background(), svc, strings.NewReader("\n   \nexit\n"), &out)

	assert.NoError(t, err)
}
