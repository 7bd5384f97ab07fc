package plans

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"

	"growthplan-backend/internal/profiles"
	"growthplan-backend/internal/queue"
	"growthplan-backend/internal/shared/metrics"
	"growthplan-backend/internal/shared/storage/object"
	"growthplan-backend/internal/shared/telemetry"
	"growthplan-backend/plan/assemble"
	"growthplan-backend/plan/refdata"
	"growthplan-backend/plan/scenario"
	"growthplan-backend/plan/steps"
	"growthplan-backend/plan/view"
)

// Service contains business logic for plan generation.
type Service struct {
	Repo        Repo
	ProfileRepo profiles.Repo
	Store       object.ObjectStore
	JobQueue    queue.Client
	Tables      refdata.Tables
	PlanVersion string
}

// Create registers a plan generation job for the given profile. With a job
// queue configured the work is handed off to the worker; otherwise it runs
// inline before returning.
func (s *Service) Create(ctx context.Context, userID, profileID string) (Plan, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(profileID) == "" {
		return Plan{}, errors.New("userID and profileID are required")
	}

	plan := Plan{
		ID:          uuid.NewString(),
		UserID:      userID,
		ProfileID:   profileID,
		PlanVersion: s.PlanVersion,
		Status:      StatusQueued,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, plan); err != nil {
		return Plan{}, err
	}

	if s.JobQueue != nil {
		msg := queue.Message{
			PlanID:     plan.ID,
			RequestID:  uuid.NewString(),
			EnqueuedAt: time.Now().UTC().Format(time.RFC3339),
			Version:    1,
		}
		if err := s.JobQueue.Send(ctx, msg); err != nil {
			_ = s.Repo.UpdateStatus(ctx, plan.ID, StatusFailed, ErrorCodeInternal)
			return Plan{}, fmt.Errorf("enqueue plan job: %w", err)
		}
		return plan, nil
	}

	if err := s.ProcessPlan(ctx, plan.ID); err != nil {
		return Plan{}, err
	}
	return s.Repo.GetByID(ctx, plan.ID)
}

// ProcessPlan runs the generation pipeline for a queued plan: classify the
// scenario, select steps, render the page sequence and persist it.
func (s *Service) ProcessPlan(ctx context.Context, planID string) error {
	plan, err := s.Repo.GetByID(ctx, planID)
	if err != nil {
		return err
	}
	if plan.Status == StatusCompleted {
		return nil
	}

	if err := s.Repo.UpdateStatus(ctx, planID, StatusProcessing, ""); err != nil {
		return err
	}
	metrics.IncPlanStarted()
	started := time.Now()

	rec, err := s.ProfileRepo.GetByID(ctx, plan.UserID, plan.ProfileID)
	if err != nil {
		return s.fail(ctx, planID, ErrorCodeInternal, fmt.Errorf("load profile: %w", err))
	}

	p := rec.Profile.Normalize()

	tag := scenario.Classify(p, s.Tables)
	selected := steps.Select(p, s.Tables)
	vm := view.Build(p, s.Tables)

	estimate := assemble.EstimateTotalPages(selected)
	pages := assemble.Assemble(vm, selected)
	if len(pages) != estimate {
		return s.fail(ctx, planID, ErrorCodeRender, fmt.Errorf("rendered %d pages, estimated %d", len(pages), estimate))
	}

	payload, err := json.Marshal(pages)
	if err != nil {
		return s.fail(ctx, planID, ErrorCodeRender, fmt.Errorf("marshal pages: %w", err))
	}

	pagesKey, _, _, err := s.Store.Save(ctx, plan.UserID, plan.ID+"_pages.json", bytes.NewReader(payload))
	if err != nil {
		return s.fail(ctx, planID, ErrorCodeStorage, fmt.Errorf("store pages: %w", err))
	}

	plan.Scenario = tag
	plan.Steps = selected
	plan.PageCount = estimate
	plan.PagesKey = pagesKey
	plan.Status = StatusCompleted
	plan.ErrorCode = ""

	if err := s.Repo.UpdateResult(ctx, plan); err != nil {
		return s.fail(ctx, planID, ErrorCodeStorage, fmt.Errorf("store result: %w", err))
	}

	metrics.IncPlanCompleted()
	metrics.ObservePlanDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)
	telemetry.Info("plan.completed", map[string]any{
		"plan_id":    planID,
		"profile_id": plan.ProfileID,
		"scenario":   string(tag),
		"steps":      len(selected),
		"pages":      estimate,
	})
	return nil
}

// Get returns a plan owned by the user.
func (s *Service) Get(ctx context.Context, userID, planID string) (Plan, error) {
	plan, err := s.Repo.GetByID(ctx, planID)
	if err != nil {
		return Plan{}, err
	}
	// Empty userID is internal access (render callback); user requests
	// always carry an identity and must own the plan.
	if userID != "" && plan.UserID != userID {
		return Plan{}, ErrNotFound
	}
	return plan, nil
}

// List returns plans owned by the user, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Plan, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.New("user id required")
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Pages loads the rendered page sequence of a completed plan.
func (s *Service) Pages(ctx context.Context, userID, planID string) ([]assemble.Page, error) {
	plan, err := s.Get(ctx, userID, planID)
	if err != nil {
		return nil, err
	}
	if plan.Status != StatusCompleted || plan.PagesKey == "" {
		return nil, ErrNotCompleted
	}

	rc, err := s.Store.Open(ctx, plan.PagesKey)
	if err != nil {
		return nil, fmt.Errorf("open pages: %w", err)
	}
	defer rc.Close()

	var pages []assemble.Page
	if err := json.NewDecoder(rc).Decode(&pages); err != nil {
		return nil, fmt.Errorf("decode pages: %w", err)
	}
	return pages, nil
}

// AttachDocument stores the rasterized PDF delivered by the external renderer
// after checking that its page count matches the estimate the plan was
// rendered with.
func (s *Service) AttachDocument(ctx context.Context, userID, planID string, r io.Reader) (Plan, error) {
	plan, err := s.Get(ctx, userID, planID)
	if err != nil {
		return Plan{}, err
	}
	if plan.Status != StatusCompleted {
		return Plan{}, ErrNotCompleted
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Plan{}, fmt.Errorf("read document: %w", err)
	}

	count, err := countPDFPages(data)
	if err != nil {
		return Plan{}, ErrInvalidDocument
	}
	if count != plan.PageCount {
		telemetry.Error("plan.document_page_mismatch", map[string]any{
			"plan_id":  planID,
			"expected": plan.PageCount,
			"actual":   count,
		})
		return Plan{}, ErrPageCountMismatch
	}

	documentKey, _, _, err := s.Store.Save(ctx, plan.UserID, plan.ID+".pdf", bytes.NewReader(data))
	if err != nil {
		return Plan{}, fmt.Errorf("store document: %w", err)
	}

	if err := s.Repo.UpdateDocument(ctx, planID, documentKey, count); err != nil {
		return Plan{}, err
	}

	plan.DocumentKey = documentKey
	plan.DocumentPages = count
	return plan, nil
}

// OpenDocument opens the attached PDF of a plan for download.
func (s *Service) OpenDocument(ctx context.Context, userID, planID string) (io.ReadCloser, Plan, error) {
	plan, err := s.Get(ctx, userID, planID)
	if err != nil {
		return nil, Plan{}, err
	}
	if plan.DocumentKey == "" {
		return nil, Plan{}, ErrNoDocument
	}
	rc, err := s.Store.Open(ctx, plan.DocumentKey)
	if err != nil {
		return nil, Plan{}, fmt.Errorf("open document: %w", err)
	}
	return rc, plan, nil
}

func (s *Service) fail(ctx context.Context, planID, code string, cause error) error {
	metrics.IncPlanFailed()
	telemetry.Error("plan.failed", map[string]any{
		"plan_id":    planID,
		"error_code": code,
		"error":      cause.Error(),
	})
	if err := s.Repo.UpdateStatus(ctx, planID, StatusFailed, code); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}

func countPDFPages(data []byte) (int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, err
	}
	n := reader.NumPage()
	if n <= 0 {
		return 0, errors.New("pdf has no pages")
	}
	return n, nil
}
