package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"formflow-server/internal/forms/domain"
	"formflow-server/internal/forms/usecases"
	"formflow-server/internal/infra/async"
	"formflow-server/internal/infra/httpserver"

	"github.com/gorilla/websocket"
)

var streamUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin validation is delegated to the deployment's reverse proxy.
		return true
	},
}

// SubmissionEvent is the wire shape pushed to stream clients whenever a
// submission is created or reviewed.
type SubmissionEvent struct {
	Type         string    `json:"type"`
	SubmissionID string    `json:"submission_id"`
	FormID       string    `json:"form_id"`
	TenantID     string    `json:"tenant_id"`
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
}

type streamClient struct {
	conn     *websocket.Conn
	tenantID string
	formID   string
}

// SubmissionStreamController pushes submission lifecycle events to review
// dashboards over a websocket. Each client subscribes to a single form and
// only receives events for its own tenant.
type SubmissionStreamController struct {
	broker     async.InternalBroker
	clientsMux sync.RWMutex
	clients    map[*streamClient]bool
	register   chan *streamClient
	unregister chan *streamClient
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewSubmissionStreamController(broker async.InternalBroker) *SubmissionStreamController {
	ctx, cancel := context.WithCancel(context.Background())

	controller := &SubmissionStreamController{
		broker:     broker,
		clients:    make(map[*streamClient]bool),
		register:   make(chan *streamClient),
		unregister: make(chan *streamClient),
		ctx:        ctx,
		cancel:     cancel,
	}

	go controller.run()

	return controller
}

var _ httpserver.Controller = (*SubmissionStreamController)(nil)

func (c *SubmissionStreamController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/forms/{id}/submissions/stream", c.handleWebSocket())
}

func (c *SubmissionStreamController) handleWebSocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := httpserver.IdentityFromContext(r.Context())
		if identity.IsAnonymous() || identity.TenantID == "" {
			httpserver.ReplyWithError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		formID := r.PathValue("id")
		if formID == "" {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "form id is required")
			return
		}

		conn, err := streamUpgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", slog.String("error", err.Error()))
			return
		}

		client := &streamClient{conn: conn, tenantID: identity.TenantID, formID: formID}
		c.register <- client

		go c.keepAlive(conn)
		go c.drainClient(client)
	}
}

// drainClient consumes the client's read side until it disconnects. Clients
// never send application data; the read loop only services control frames.
func (c *SubmissionStreamController) drainClient(client *streamClient) {
	defer func() {
		c.unregister <- client
		client.conn.Close()
	}()

	client.conn.SetReadLimit(512)
	client.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("websocket read error", slog.String("error", err.Error()))
			} else {
				slog.Debug("websocket connection closed", slog.String("error", err.Error()))
			}
			return
		}
	}
}

func (c *SubmissionStreamController) keepAlive(conn *websocket.Conn) {
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *SubmissionStreamController) run() {
	created, err := c.broker.Subscribe(usecases.TopicSubmissionCreated)
	if err != nil {
		slog.Error("subscribing to submission created events", slog.String("error", err.Error()))
		return
	}
	defer c.broker.Unsubscribe(usecases.TopicSubmissionCreated, created)

	reviewed, err := c.broker.Subscribe(usecases.TopicSubmissionStatusChanged)
	if err != nil {
		slog.Error("subscribing to submission status events", slog.String("error", err.Error()))
		return
	}
	defer c.broker.Unsubscribe(usecases.TopicSubmissionStatusChanged, reviewed)

	for {
		select {
		case <-c.ctx.Done():
			return

		case client := <-c.register:
			c.clientsMux.Lock()
			c.clients[client] = true
			total := len(c.clients)
			c.clientsMux.Unlock()
			slog.Info("submission stream client registered", slog.Int("total_clients", total))

		case client := <-c.unregister:
			c.clientsMux.Lock()
			if _, ok := c.clients[client]; ok {
				delete(c.clients, client)
				client.conn.Close()
			}
			total := len(c.clients)
			c.clientsMux.Unlock()
			slog.Info("submission stream client unregistered", slog.Int("total_clients", total))

		case msg, ok := <-created.Receiver:
			if !ok {
				return
			}
			c.dispatch(msg, "submission_created")

		case msg, ok := <-reviewed.Receiver:
			if !ok {
				return
			}
			c.dispatch(msg, "submission_status_changed")
		}
	}
}

func (c *SubmissionStreamController) dispatch(msg async.BrokerMessage, eventType string) {
	submission, ok := msg.Value.(domain.Submission)
	if !ok {
		return
	}

	event := SubmissionEvent{
		Type:         eventType,
		SubmissionID: submission.ID.String(),
		FormID:       submission.FormID.String(),
		TenantID:     submission.TenantID.String(),
		Status:       string(submission.Status),
		Timestamp:    time.Now(),
	}

	c.clientsMux.Lock()
	defer c.clientsMux.Unlock()

	for client := range c.clients {
		if client.tenantID != event.TenantID || client.formID != event.FormID {
			continue
		}

		client.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := client.conn.WriteJSON(event); err != nil {
			slog.Error("writing submission event", slog.String("error", err.Error()))
			client.conn.Close()
			delete(c.clients, client)
		}
	}
}

func (c *SubmissionStreamController) Shutdown() {
	slog.Info("shutting down submission stream controller")
	c.cancel()

	c.clientsMux.Lock()
	for client := range c.clients {
		client.conn.Close()
	}
	c.clients = make(map[*streamClient]bool)
	c.clientsMux.Unlock()
}
