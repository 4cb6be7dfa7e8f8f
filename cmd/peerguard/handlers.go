package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/circleofpeers/peerguard/advisory"
	"github.com/circleofpeers/peerguard/automod"
	"github.com/circleofpeers/peerguard/verification"

	"github.com/carlmjohnson/versioninfo"
	"github.com/labstack/echo/v4"
)

func (s *Server) handleRoot(e echo.Context) error {
	return e.JSON(http.StatusOK, map[string]any{
		"service":   "peerguard",
		"status":    "healthy",
		"version":   versioninfo.Short(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleHealth(e echo.Context) error {
	advisoryStatus := "missing"
	if s.modEngine.Advisory != nil {
		advisoryStatus = "configured"
	}
	notifierStatus := "missing"
	if s.modEngine.Notifier != nil {
		notifierStatus = "configured"
	}
	return e.JSON(http.StatusOK, map[string]any{
		"status": "healthy",
		"services": map[string]string{
			"advisory": advisoryStatus,
			"platform": notifierStatus,
		},
	})
}

// Synchronous moderation entry point. Always returns a complete verdict; the
// only caller-visible errors are malformed requests.
func (s *Server) handleModerate(e echo.Context) error {
	var item automod.ContentItem
	if err := e.Bind(&item); err != nil {
		return &echo.HTTPError{Code: http.StatusBadRequest, Message: fmt.Sprintf("invalid content item: %s", err)}
	}
	verdict := s.modEngine.ModerateContent(e.Request().Context(), item)
	return e.JSON(http.StatusOK, verdict)
}

// Peer reply generation. This is the one operation with no fallback path: a
// missing reasoning service is surfaced as service-unavailable.
func (s *Server) handleReply(e echo.Context) error {
	var item automod.ContentItem
	if err := e.Bind(&item); err != nil {
		return &echo.HTTPError{Code: http.StatusBadRequest, Message: fmt.Sprintf("invalid content item: %s", err)}
	}
	if s.replyClient == nil {
		return &echo.HTTPError{Code: http.StatusServiceUnavailable, Message: advisory.ErrNotConfigured.Error()}
	}
	reply, err := s.replyClient.GenerateReply(e.Request().Context(), item)
	if err != nil {
		s.logger.Error("reply generation failed", "err", err, "postID", item.PostID)
		return &echo.HTTPError{Code: http.StatusBadGateway, Message: "reply generation failed"}
	}
	return e.JSON(http.StatusOK, reply)
}

type flagRequest struct {
	automod.ContentItem
	ViolationType automod.ViolationType `json:"violation_type"`
	Reason        string                `json:"reason"`
}

// Registers a user-submitted flag against a post.
func (s *Server) handleFlag(e echo.Context) error {
	var req flagRequest
	if err := e.Bind(&req); err != nil {
		return &echo.HTTPError{Code: http.StatusBadRequest, Message: fmt.Sprintf("invalid flag request: %s", err)}
	}
	if !automod.ValidViolationType(req.ViolationType) {
		return &echo.HTTPError{Code: http.StatusBadRequest, Message: "invalid violation type"}
	}
	s.logger.Info("user flag created", "postID", req.PostID, "violation", req.ViolationType, "reason", req.Reason)
	return e.JSON(http.StatusOK, map[string]any{
		"success":        true,
		"flag_id":        fmt.Sprintf("flag_%d_%d", req.PostID, time.Now().UTC().Unix()),
		"violation_type": req.ViolationType,
		"reason":         req.Reason,
	})
}

type verifyRequest struct {
	UserInfo        verification.UserInfo    `json:"user_info"`
	ApplicationData map[string]any           `json:"application_data"`
	Criteria        []verification.Criterion `json:"criteria"`
}

// Applicant verification entry point. Always returns a complete verdict.
func (s *Server) handleVerify(e echo.Context) error {
	var req verifyRequest
	if err := e.Bind(&req); err != nil {
		return &echo.HTTPError{Code: http.StatusBadRequest, Message: fmt.Sprintf("invalid verification request: %s", err)}
	}
	verdict := s.verifyEngine.Verify(e.Request().Context(), req.UserInfo, req.ApplicationData, req.Criteria)
	return e.JSON(http.StatusOK, verdict)
}

// Webhook entry point for platform events. Moderation runs after the response
// is sent; the ack is always unflagged and real verdicts are reported through
// the flag notifier only. Callers needing a synchronous verdict must POST to
// /moderate instead.
func (s *Server) handleWebhook(e echo.Context) error {
	var evt automod.Event
	if err := e.Bind(&evt); err != nil {
		return &echo.HTTPError{Code: http.StatusBadRequest, Message: fmt.Sprintf("invalid webhook payload: %s", err)}
	}
	s.logger.Info("received webhook", "type", evt.EventType, "postID", evt.PostID)

	// detach from the request context so processing survives the ack
	go s.modEngine.ProcessEvent(context.Background(), evt)

	return e.JSON(http.StatusOK, automod.NotFlagged())
}
