package insights

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/scmdash/scm-backend/internal/kvstore"
	"github.com/scmdash/scm-backend/internal/models"
)

type ClientTestSuite struct {
	suite.Suite
	ctx    context.Context
	kv     *kvstore.Memory
	server *httptest.Server
	hits   int32
	status int
	auth   atomic.Value
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.kv = kvstore.NewMemory()
	s.hits = 0
	s.status = http.StatusOK
	s.auth.Store("")

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&s.hits, 1)
		s.auth.Store(r.Header.Get("Authorization"))
		if s.status != http.StatusOK {
			w.WriteHeader(s.status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/recommendations":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"recommendations": []Recommendation{{Title: "From remote", Impact: "positive"}},
			})
		case "/train-model":
			json.NewEncoder(w).Encode(TrainingResult{Success: true, ExpectedAccuracy: 0.95})
		default:
			w.Write([]byte(`{}`))
		}
	}))
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) newClient() *Client {
	c, err := NewClient(s.ctx, s.kv, NewRemoteProvider(s.server.URL, time.Second), NewDemoProvider(1))
	s.Require().NoError(err)
	return c
}

func (s *ClientTestSuite) TestUnconfiguredPromptsWithoutNetworkCall() {
	c := s.newClient()
	s.False(c.IsConfigured())

	recs, err := c.Recommendations(s.ctx, Snapshot{})
	s.Require().NoError(err)
	s.True(recs.Prompt)
	s.Empty(recs.Data)

	delay, err := c.PredictDelay(s.ctx, "SHP001")
	s.Require().NoError(err)
	s.True(delay.Prompt)
	s.Nil(delay.Data)

	s.Equal(int32(0), atomic.LoadInt32(&s.hits))
}

func (s *ClientTestSuite) TestConfigureRejectsEmptyKey() {
	c := s.newClient()

	ok, err := c.Configure(s.ctx, "   ")
	s.ErrorIs(err, ErrEmptyAPIKey)
	s.False(ok)
	s.False(c.IsConfigured())
}

func (s *ClientTestSuite) TestConfigurePersistsKey() {
	c := s.newClient()

	ok, err := c.Configure(s.ctx, "secret")
	s.Require().NoError(err)
	s.True(ok)
	s.True(c.IsConfigured())

	var stored string
	s.Require().NoError(s.kv.Get(s.ctx, APIKeyKey, &stored))
	s.Equal("secret", stored)

	restored := s.newClient()
	s.True(restored.IsConfigured())
}

func (s *ClientTestSuite) TestRemoteCallSendsBearerToken() {
	c := s.newClient()
	_, err := c.Configure(s.ctx, "secret")
	s.Require().NoError(err)

	recs, err := c.Recommendations(s.ctx, Snapshot{})
	s.Require().NoError(err)
	s.False(recs.Fallback)
	s.Equal("remote", recs.Provider)
	s.Require().Len(recs.Data, 1)
	s.Equal("From remote", recs.Data[0].Title)
	s.Equal("Bearer secret", s.auth.Load())
}

func (s *ClientTestSuite) TestRemoteFailureFallsBackToDemoData() {
	s.status = http.StatusBadGateway
	c := s.newClient()
	_, err := c.Configure(s.ctx, "secret")
	s.Require().NoError(err)

	recs, err := c.Recommendations(s.ctx, Snapshot{})
	s.Require().NoError(err)
	s.True(recs.Fallback)
	s.Equal("demo", recs.Provider)
	s.Len(recs.Data, 4)
	s.Equal(int32(1), atomic.LoadInt32(&s.hits))
}

func (s *ClientTestSuite) TestTrainModelMarksTraining() {
	c := s.newClient()
	c.TrainingDuration = time.Hour
	_, err := c.Configure(s.ctx, "secret")
	s.Require().NoError(err)

	res, err := c.TrainModel(s.ctx, "model-001", json.RawMessage(`{"rows":10}`))
	s.Require().NoError(err)
	s.True(res.Data.Success)

	model := c.Models()[0]
	s.Equal(ModelTraining, model.Status)
	s.Equal(0.95, model.Accuracy)

	c.finishTraining("model-001")
	s.Equal(ModelActive, c.Models()[0].Status)
}

func (s *ClientTestSuite) TestTrainUnknownModel() {
	c := s.newClient()
	_, err := c.TrainModel(s.ctx, "model-999", nil)
	s.ErrorIs(err, ErrUnknownModel)
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func TestDemoProviderIsDeterministicForSeed(t *testing.T) {
	ctx := context.Background()
	a, err := NewDemoProvider(42).PredictDelay(ctx, "SHP001")
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewDemoProvider(42).PredictDelay(ctx, "SHP001")
	if err != nil {
		t.Fatal(err)
	}
	if a.DelayProbability != b.DelayProbability || a.PredictedDelayHours != b.PredictedDelayHours {
		t.Fatalf("expected identical predictions, got %+v and %+v", a, b)
	}
}

func TestDemoProviderCountsShipmentModes(t *testing.T) {
	shipments := []models.Shipment{
		{ID: "SHP001", Mode: models.ShipmentModeAir},
		{ID: "SHP002", Mode: models.ShipmentModeAir},
		{ID: "SHP003", Mode: models.ShipmentModeTruck},
	}
	analytics, err := NewDemoProvider(1).AnalyzeShipments(context.Background(), shipments)
	if err != nil {
		t.Fatal(err)
	}
	if analytics.TransportModes[0].Value != 1 || analytics.TransportModes[2].Value != 2 {
		t.Fatalf("unexpected mode counts: %+v", analytics.TransportModes)
	}
}
