package githubhooks

import (
	"context"
	"encoding/json"
	"strings"

	"podcastsite/internal/contentsync"
	"podcastsite/internal/errmsg"
	"podcastsite/internal/models"
	"podcastsite/internal/utils"

	"github.com/gofiber/fiber/v3"
	log "github.com/go-pkgz/lgr"
)

// GitHub header keys that drive webhook validation.
const (
	signatureHeader = "X-Hub-Signature-256"
	eventHeader     = "X-GitHub-Event"
	deliveryHeader  = "X-GitHub-Delivery"
)

const (
	MsgIgnoredEvent  = "Ignoring non-push event"
	MsgIgnoredBranch = "Ignoring push to non-main branch"
	MsgSyncCompleted = "Sync process completed"
)

// Syncer processes the candidate files of an accepted push.
type Syncer interface {
	Process(ctx context.Context, batch contentsync.Batch) models.SyncReport
}

type ContentHandler struct {
	secret string
	branch string
	syncer Syncer
}

// NewContentHandler builds the content webhook handler. An empty secret
// rejects every delivery.
func NewContentHandler(secret, branch string, syncer Syncer) *ContentHandler {
	return &ContentHandler{
		secret: strings.TrimSpace(secret),
		branch: branch,
		syncer: syncer,
	}
}

// SyncContent publishes changed episode files pushed to the content repository.
// @Summary Sync episode content
// @Description Verifies the GitHub HMAC signature, then publishes every changed episodes/*.md file onto its scheduled episode. Per-file failures never change the response.
// @Tags Content Webhooks
// @Accept json
// @Produce json
// @Param X-Hub-Signature-256 header string true "sha256=<hex hmac of the body>"
// @Param X-GitHub-Event header string true "GitHub event name"
// @Param X-GitHub-Delivery header string false "GitHub delivery id"
// @Success 200 {object} utils.MessageResponse
// @Failure 400 {object} errmsg._GitHubInvalidPayload
// @Failure 401 {object} errmsg._GitHubSignatureInvalid
// @Router /api/sync-content [post]
func (h *ContentHandler) SyncContent(c fiber.Ctx) error {
	body := c.Body()

	signature := strings.TrimSpace(c.Get(signatureHeader))
	if signature == "" {
		return utils.StatusError(c, errmsg.GitHubSignatureMissing)
	}
	if err := checkSignatureHeader(signature); err != nil {
		return utils.StatusError(c, errmsg.GitHubSignatureMalformed)
	}

	// Reject requests whose HMAC cannot be verified with our shared secret.
	if !VerifySignature(h.secret, body, signature) {
		if h.secret == "" {
			log.Printf("[WARN] content webhook secret is not configured, rejecting delivery")
		}
		return utils.StatusError(c, errmsg.GitHubSignatureInvalid)
	}

	eventType := strings.TrimSpace(c.Get(eventHeader))
	if eventType == "" {
		return utils.StatusError(c, errmsg.GitHubEventMissing)
	}
	deliveryID := strings.TrimSpace(c.Get(deliveryHeader))

	// only push payloads are decoded; ping and friends carry no ref
	var payload PushPayload
	if eventType == PushEvent {
		if err := json.Unmarshal(body, &payload); err != nil {
			return utils.StatusError(c, errmsg.GitHubInvalidPayload)
		}

		payload.Ref = strings.TrimSpace(payload.Ref)
		if payload.Ref == "" {
			return utils.StatusError(c, errmsg.GitHubInvalidPayload)
		}
	}

	result := FilterPush(eventType, payload, h.branch)
	switch result.Skip {
	case SkipNonPushEvent:
		log.Printf("[DEBUG] delivery %s: ignoring %s event", deliveryID, eventType)
		return utils.Message(c, fiber.StatusOK, MsgIgnoredEvent)
	case SkipNonMainBranch:
		log.Printf("[DEBUG] delivery %s: ignoring push to %s", deliveryID, payload.Ref)
		return utils.Message(c, fiber.StatusOK, MsgIgnoredBranch)
	}

	log.Printf("[INFO] delivery %s: %d episode files changed at %s", deliveryID, len(result.Files), payload.After)

	h.syncer.Process(c, contentsync.Batch{
		DeliveryID: deliveryID,
		Ref:        payload.Ref,
		After:      payload.After,
		Files:      result.Files,
	})

	return utils.Message(c, fiber.StatusOK, MsgSyncCompleted)
}
