package http

import (
	"encoding/json"
	"log"
	"net/http"

	"quiz-player/internal/app"
	"quiz-player/internal/domain"
	"quiz-player/internal/present"

	"github.com/gorilla/websocket"
)

type WSHandler struct {
	service     *app.PlayerService
	passPercent int
	upgrader    websocket.Upgrader
}

func NewWSHandler(service *app.PlayerService, passPercent int) *WSHandler {
	return &WSHandler{
		service:     service,
		passPercent: passPercent,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	Label string `json:"label"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type choicePayload struct {
	Label domain.Label `json:"label"`
	Text  string       `json:"text"`
}

// questionPayload never carries the correct label.
type questionPayload struct {
	Prompt  string          `json:"prompt"`
	Choices []choicePayload `json:"choices"`
}

type viewPayload struct {
	Index     int              `json:"index"`
	Total     int              `json:"total"`
	Score     int              `json:"score"`
	Answered  bool             `json:"answered"`
	Completed bool             `json:"completed"`
	Question  *questionPayload `json:"question,omitempty"`
}

type startedPayload struct {
	PlayID string      `json:"playId"`
	View   viewPayload `json:"view"`
}

type answerResult struct {
	Label        domain.Label `json:"label"`
	Correct      bool         `json:"correct"`
	CorrectLabel domain.Label `json:"correctLabel"`
	Score        int          `json:"score"`
	Feedback     string       `json:"feedback"`
	Cue          present.Cue  `json:"cue"`
}

type completedPayload struct {
	Score   int          `json:"score"`
	Total   int          `json:"total"`
	Percent int          `json:"percent"`
	Tier    present.Tier `json:"tier"`
	Result  string       `json:"result"`
	Cue     present.Cue  `json:"cue"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets and plays one bank per connection.
// The connection is served on a single goroutine, so the play is never touched concurrently.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	bankID := r.URL.Query().Get("bank")
	if bankID == "" {
		http.Error(w, "missing bank", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	playID, view, err := h.service.Start(ctx, bankID)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	defer h.service.Leave(ctx, playID)

	send := func(msgType string, payload any) bool {
		if err := conn.WriteJSON(outboundMessage[any]{Type: msgType, Payload: payload}); err != nil {
			log.Printf("ws write error: %v", err)
			return false
		}
		return true
	}
	sendErr := func(err error) bool {
		return send("error", errorPayload{Message: err.Error()})
	}

	if !send("started", startedPayload{PlayID: playID, View: toViewPayload(view)}) {
		return
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}

		var ok bool
		switch inbound.Type {
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				ok = send("error", errorPayload{Message: "invalid answer payload"})
				break
			}
			outcome, view, err := h.service.Submit(ctx, playID, payload.Label)
			if err != nil {
				ok = sendErr(err)
				break
			}
			ok = send("answerResult", answerResult{
				Label:        outcome.Label,
				Correct:      outcome.Correct,
				CorrectLabel: outcome.CorrectLabel,
				Score:        view.Score,
				Feedback:     present.Feedback(outcome),
				Cue:          present.AnswerCue(outcome),
			})
		case "next":
			view, err := h.service.Advance(ctx, playID)
			if err != nil {
				ok = sendErr(err)
				break
			}
			if !view.Completed {
				ok = send("question", toViewPayload(view))
				break
			}
			score, err := h.service.FinalScore(ctx, playID)
			if err != nil {
				ok = sendErr(err)
				break
			}
			tier := present.TierFor(score, h.passPercent)
			ok = send("completed", completedPayload{
				Score:   score.Score,
				Total:   score.Total,
				Percent: score.Percent(),
				Tier:    tier,
				Result:  present.Result(score),
				Cue:     present.TierCue(tier),
			})
		default:
			ok = send("error", errorPayload{Message: "unsupported message type"})
		}
		if !ok {
			return
		}
	}
}

func toViewPayload(view domain.SessionView) viewPayload {
	out := viewPayload{
		Index:     view.Index,
		Total:     view.Total,
		Score:     view.Score,
		Answered:  view.Answered,
		Completed: view.Completed,
	}
	if q := view.Question; q != nil {
		qp := &questionPayload{Prompt: q.Prompt}
		for i, choice := range q.Choices {
			qp.Choices = append(qp.Choices, choicePayload{Label: domain.Labels[i], Text: choice})
		}
		out.Question = qp
	}
	return out
}
