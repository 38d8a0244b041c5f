package deployapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freighter-cd/freighter-cd-runner/api"
)

func getTestConfig(eventsURL, postLogsURL string) api.RunConfig {
	return api.RunConfig{
		App:         "freighter-api",
		Branch:      "main",
		Revision:    "0a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6e7f8a9b",
		RepoOwner:   "freighter-cd",
		RepoName:    "freighter-api",
		RunID:       "run-12345",
		Environment: "staging",
		ControlServer: api.ControlServerConfig{
			EventsURL:   eventsURL,
			PostLogsURL: postLogsURL,
			JWT:         "control-server-jwt",
		},
	}
}

func TestSendRunStartedEvent(t *testing.T) {

	t.Run("PostsRunEventWithAuthorizationHeader", func(t *testing.T) {

		var receivedAuth, receivedEvent string
		var receivedBody runEvent
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			receivedAuth = r.Header.Get("Authorization")
			receivedEvent = r.Header.Get("X-Freighter-Event")
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &receivedBody)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(getTestConfig(server.URL, ""))

		// act
		err := client.SendRunStartedEvent(context.Background())

		assert.Nil(t, err)
		assert.Equal(t, "Bearer control-server-jwt", receivedAuth)
		assert.Equal(t, "run:running", receivedEvent)
		assert.Equal(t, "run-12345", receivedBody.RunID)
		assert.Equal(t, "running", receivedBody.Status)
	})

	t.Run("SkipsPostWhenEventsURLIsEmpty", func(t *testing.T) {

		client := NewClient(getTestConfig("", ""))

		// act
		err := client.SendRunStartedEvent(context.Background())

		assert.Nil(t, err)
	})
}

func TestSendRunFinishedEvent(t *testing.T) {

	t.Run("PostsFinalStatus", func(t *testing.T) {

		var receivedBody runEvent
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &receivedBody)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(getTestConfig(server.URL, ""))

		// act
		err := client.SendRunFinishedEvent(context.Background(), api.StatusFailed)

		assert.Nil(t, err)
		assert.Equal(t, "failed", receivedBody.Status)
	})

	t.Run("PostsResolvedRevisionWhenSet", func(t *testing.T) {

		var receivedBody runEvent
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &receivedBody)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		config := getTestConfig(server.URL, "")
		config.Revision = ""
		client := NewClient(config)
		client.SetResolvedRevision("9f8e7d6c5b4a3f2e1d0c9b8a7f6e5d4c3b2a1f0e")

		// act
		err := client.SendRunFinishedEvent(context.Background(), api.StatusSucceeded)

		assert.Nil(t, err)
		assert.Equal(t, "9f8e7d6c5b4a3f2e1d0c9b8a7f6e5d4c3b2a1f0e", receivedBody.RepoRevision)
	})
}

func TestSendRunLogEvent(t *testing.T) {

	t.Run("ShipsRunLogAsJson", func(t *testing.T) {

		var receivedRunLog api.RunLog
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &receivedRunLog)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(getTestConfig("", server.URL))
		runLog := api.RunLog{
			RepoOwner: "freighter-cd",
			RepoName:  "freighter-api",
			Stages: []*api.StageResult{
				{Stage: "build", Status: api.StatusSucceeded},
				{Stage: "deploy", Status: api.StatusFailed, ExitCode: 1},
			},
		}

		// act
		err := client.SendRunLogEvent(context.Background(), runLog)

		assert.Nil(t, err)
		assert.Equal(t, 2, len(receivedRunLog.Stages))
		assert.Equal(t, "deploy", receivedRunLog.Stages[1].Stage)
	})

	t.Run("ReturnsErrorWhenServerRespondsWithInternalServerError", func(t *testing.T) {

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(getTestConfig("", server.URL))

		// act
		err := client.SendRunLogEvent(context.Background(), api.RunLog{})

		assert.NotNil(t, err)
	})

	t.Run("SkipsPostWhenJWTIsEmpty", func(t *testing.T) {

		config := getTestConfig("", "http://localhost:1")
		config.ControlServer.JWT = ""
		client := NewClient(config)

		// act
		err := client.SendRunLogEvent(context.Background(), api.RunLog{})

		assert.Nil(t, err)
	})
}
