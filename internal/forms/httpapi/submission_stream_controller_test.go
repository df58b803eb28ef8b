package httpapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"formflow-server/internal/forms/domain"
	"formflow-server/internal/forms/httpapi"
	"formflow-server/internal/forms/usecases"
	"formflow-server/internal/infra/async"
	"formflow-server/internal/infra/httpserver"

	"github.com/gorilla/websocket"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SubmissionStreamController", func() {
	var (
		broker     *async.LocalBroker
		controller *httpapi.SubmissionStreamController
		server     *httptest.Server
	)

	reviewer := httpserver.Identity{UserID: "user-1", TenantID: "tenant-1", Email: "rev@example.com", Role: "approver"}

	BeforeEach(func() {
		broker = async.NewLocalBroker()
		controller = httpapi.NewSubmissionStreamController(broker)

		router := http.NewServeMux()
		controller.AddRoutes(router)

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			router.ServeHTTP(w, r.WithContext(httpserver.ContextWithIdentity(r.Context(), reviewer)))
		}))
	})

	AfterEach(func() {
		controller.Shutdown()
		broker.Stop()
		server.Close()
	})

	streamURL := func(formID string) string {
		return "ws" + strings.TrimPrefix(server.URL, "http") + "/v1/forms/" + formID + "/submissions/stream"
	}

	It("serves the form scoped stream under the versioned path", func() {
		conn, response, err := websocket.DefaultDialer.Dial(streamURL("form-1"), nil)
		Expect(err).ToNot(HaveOccurred())
		defer conn.Close()

		Expect(response.StatusCode).To(Equal(http.StatusSwitchingProtocols))
	})

	It("pushes events for the subscribed form only", func() {
		conn, _, err := websocket.DefaultDialer.Dial(streamURL("form-1"), nil)
		Expect(err).ToNot(HaveOccurred())
		defer conn.Close()

		// the registration travels through the controller's run loop
		time.Sleep(50 * time.Millisecond)

		ctx := context.Background()
		otherForm := domain.Submission{ID: "sub-other", FormID: "form-2", TenantID: "tenant-1", Status: domain.SubmissionStatusSubmitted}
		Expect(broker.Publish(ctx, usecases.TopicSubmissionCreated, async.BrokerMessage{Value: otherForm})).To(Succeed())

		subscribed := domain.Submission{ID: "sub-1", FormID: "form-1", TenantID: "tenant-1", Status: domain.SubmissionStatusPending}
		Expect(broker.Publish(ctx, usecases.TopicSubmissionCreated, async.BrokerMessage{Value: subscribed})).To(Succeed())

		conn.SetReadDeadline(time.Now().Add(2 * time.Second))

		var event httpapi.SubmissionEvent
		Expect(conn.ReadJSON(&event)).To(Succeed())
		Expect(event.Type).To(Equal("submission_created"))
		Expect(event.SubmissionID).To(Equal("sub-1"))
		Expect(event.FormID).To(Equal("form-1"))
		Expect(event.TenantID).To(Equal("tenant-1"))
	})

	It("does not forward another tenant's events", func() {
		conn, _, err := websocket.DefaultDialer.Dial(streamURL("form-1"), nil)
		Expect(err).ToNot(HaveOccurred())
		defer conn.Close()

		time.Sleep(50 * time.Millisecond)

		ctx := context.Background()
		foreign := domain.Submission{ID: "sub-x", FormID: "form-1", TenantID: "tenant-2", Status: domain.SubmissionStatusSubmitted}
		Expect(broker.Publish(ctx, usecases.TopicSubmissionCreated, async.BrokerMessage{Value: foreign})).To(Succeed())

		conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))

		var event httpapi.SubmissionEvent
		Expect(conn.ReadJSON(&event)).ToNot(Succeed())
	})
})
