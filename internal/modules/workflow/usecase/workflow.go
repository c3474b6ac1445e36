package usecase

import (
	"context"
	"errors"
	"sync"

	gatewaydto "revguide/internal/modules/gateway/dto"
	gatewayin "revguide/internal/modules/gateway/port/in"
	paperdto "revguide/internal/modules/paper/dto"
	paperin "revguide/internal/modules/paper/port/in"
	"revguide/internal/modules/workflow/domain"
	"revguide/internal/modules/workflow/dto"
	workflowin "revguide/internal/modules/workflow/port/in"
	workflowout "revguide/internal/modules/workflow/port/out"
	"revguide/internal/modules/workflow/service"
	"revguide/internal/platform/clock"
	apperrors "revguide/internal/platform/errors"
	"revguide/internal/platform/id"
)

// Interactor owns the single Session value for the run. Submission commands
// run in goroutines, so access goes through the mutex; the snapshot taken
// under the lock is what actually travels to the gateway, which keeps an
// in-flight request immune to later session edits.
type Interactor struct {
	mu       sync.Mutex
	svc      *service.WorkflowService
	gateway  gatewayin.Usecase
	paper    paperin.Usecase
	activity workflowout.ActivityProjector
	clock    clock.Clock
	ids      id.Generator

	sess domain.Session
	comp *domain.ComparisonSession
}

func NewInteractor(
	svc *service.WorkflowService,
	gateway gatewayin.Usecase,
	paper paperin.Usecase,
	activity workflowout.ActivityProjector,
	clk clock.Clock,
	ids id.Generator,
) workflowin.Usecase {
	return &Interactor{
		svc:      svc,
		gateway:  gateway,
		paper:    paper,
		activity: activity,
		clock:    clk,
		ids:      ids,
		sess:     svc.NewSession(),
	}
}

func (i *Interactor) Session(_ context.Context) dto.SessionView {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.sessionView()
}

func (i *Interactor) Venues(_ context.Context) []string {
	return i.svc.Venues()
}

func (i *Interactor) SetAPIKey(_ context.Context, key string) dto.SessionView {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.sess.Step == domain.StepCredentials {
		i.sess.APIKey = key
	}
	return i.sessionView()
}

func (i *Interactor) SetPrompt(_ context.Context, prompt string) dto.SessionView {
	i.mu.Lock()
	defer i.mu.Unlock()
	// Options are only mutable while the wizard sits on the options step.
	if i.sess.Step == domain.StepOptions {
		i.sess.Options.Prompt = prompt
	}
	return i.sessionView()
}

func (i *Interactor) SetVenue(_ context.Context, venue string) dto.SessionView {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.sess.Step == domain.StepOptions {
		i.sess.Options.Venue = venue
	}
	return i.sessionView()
}

// AttachPaper loads and gates the file at path, replacing any previously
// selected paper. A failing gate is not an error here: the paper stays
// attached with its reject reason, and submission is what refuses it.
func (i *Interactor) AttachPaper(ctx context.Context, path string) (dto.SessionView, error) {
	out, err := i.paper.Inspect(ctx, paperdto.InspectInput{Path: path})
	if err != nil {
		i.mu.Lock()
		defer i.mu.Unlock()
		return i.sessionView(), err
	}

	i.mu.Lock()
	if i.sess.Submission.Phase != domain.PhaseInFlight {
		i.sess.Paper = &domain.Paper{
			Path:         out.Path,
			Name:         out.Name,
			Size:         out.Size,
			ContentType:  out.ContentType,
			Pages:        out.Pages,
			Data:         out.Data,
			Accepted:     out.Accepted,
			RejectReason: out.RejectReason,
		}
	}
	view := i.sessionView()
	i.mu.Unlock()

	i.record(ctx, "paper_attached", out.Name)
	return view, nil
}

func (i *Interactor) Next(ctx context.Context) (dto.SessionView, error) {
	i.mu.Lock()
	next, err := i.svc.Advance(i.sess)
	if err != nil {
		view := i.sessionView()
		i.mu.Unlock()
		return view, err
	}
	i.sess = next
	view := i.sessionView()
	i.mu.Unlock()

	i.record(ctx, "step_advanced", view.Step)
	return view, nil
}

func (i *Interactor) Back(ctx context.Context) (dto.SessionView, error) {
	i.mu.Lock()
	prev, err := i.svc.Back(i.sess)
	if err != nil {
		view := i.sessionView()
		i.mu.Unlock()
		return view, err
	}
	i.sess = prev
	view := i.sessionView()
	i.mu.Unlock()

	i.record(ctx, "step_back", view.Step)
	return view, nil
}

func (i *Interactor) Restart(ctx context.Context) (dto.SessionView, error) {
	i.mu.Lock()
	next, err := i.svc.Restart(i.sess)
	if err != nil {
		view := i.sessionView()
		i.mu.Unlock()
		return view, err
	}
	i.sess = next
	i.comp = nil
	view := i.sessionView()
	i.mu.Unlock()

	i.record(ctx, "restarted", "")
	return view, nil
}

// Submit executes the single long-latency evaluation request. Local gate
// failures return an error without any network call; a terminal remote
// outcome comes back in the output. The gateway call happens outside the
// lock, and the completion is applied only if its generation token still
// matches — a stale completion is a silent no-op.
func (i *Interactor) Submit(ctx context.Context) (dto.SubmitOutput, error) {
	i.mu.Lock()
	begun, generation, err := i.svc.BeginSubmission(i.sess)
	if err != nil {
		i.mu.Unlock()
		return dto.SubmitOutput{}, err
	}
	i.sess = begun
	snapshot := gatewaydto.EvaluateInput{
		APIKey:      begun.APIKey,
		Prompt:      begun.Options.Prompt,
		Venue:       begun.Options.Venue,
		FileName:    begun.Paper.Name,
		ContentType: begun.Paper.ContentType,
		FileData:    append([]byte(nil), begun.Paper.Data...),
	}
	i.mu.Unlock()

	i.record(ctx, "submit_started", snapshot.FileName)

	result, reason := "", ""
	out, err := i.gateway.Evaluate(ctx, snapshot)
	if err != nil {
		reason = failureReason(err)
	} else {
		result = out.Evaluation
	}

	i.mu.Lock()
	completed, applied := i.svc.CompleteSubmission(i.sess, generation, result, reason)
	if applied {
		i.sess = completed
	}
	i.mu.Unlock()

	if !applied {
		return dto.SubmitOutput{Applied: false}, nil
	}
	if reason != "" {
		i.record(ctx, "submit_failed", reason)
		return dto.SubmitOutput{Applied: true, Phase: domain.PhaseFailed.String(), Reason: reason}, nil
	}
	i.record(ctx, "submit_succeeded", snapshot.FileName)
	return dto.SubmitOutput{Applied: true, Phase: domain.PhaseSucceeded.String(), Result: result}, nil
}

func (i *Interactor) StartComparison(ctx context.Context) (dto.ComparisonView, error) {
	i.mu.Lock()
	if i.comp == nil {
		comp, err := i.svc.BeginComparison(i.sess)
		if err != nil {
			i.mu.Unlock()
			return dto.ComparisonView{}, err
		}
		i.comp = &comp
	}
	view := comparisonView(*i.comp)
	i.mu.Unlock()

	i.record(ctx, "comparison_opened", "")
	return view, nil
}

func (i *Interactor) SetHumanReview(_ context.Context, text string) (dto.ComparisonView, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.comp == nil {
		return dto.ComparisonView{}, apperrors.ErrNoEvaluation
	}
	if i.comp.State.Phase != domain.PhaseInFlight {
		i.comp.HumanReview = text
	}
	return comparisonView(*i.comp), nil
}

// Compare mirrors Submit for the comparison sub-flow: same mutual exclusion,
// same generation-token staleness rule, no retry.
func (i *Interactor) Compare(ctx context.Context) (dto.CompareOutput, error) {
	i.mu.Lock()
	if i.comp == nil {
		i.mu.Unlock()
		return dto.CompareOutput{}, apperrors.ErrNoEvaluation
	}
	begun, generation, err := i.svc.StartCompare(*i.comp)
	if err != nil {
		i.mu.Unlock()
		return dto.CompareOutput{}, err
	}
	*i.comp = begun
	snapshot := gatewaydto.CompareInput{
		APIKey:      begun.APIKey,
		Evaluation:  begun.Evaluation,
		HumanReview: begun.HumanReview,
	}
	i.mu.Unlock()

	i.record(ctx, "compare_started", "")

	result, reason := "", ""
	out, err := i.gateway.Compare(ctx, snapshot)
	if err != nil {
		reason = failureReason(err)
	} else {
		result = out.Comparison
	}

	i.mu.Lock()
	applied := false
	if i.comp != nil {
		var completed domain.ComparisonSession
		completed, applied = i.svc.CompleteCompare(*i.comp, generation, result, reason)
		if applied {
			*i.comp = completed
		}
	}
	i.mu.Unlock()

	if !applied {
		return dto.CompareOutput{Applied: false}, nil
	}
	if reason != "" {
		i.record(ctx, "compare_failed", reason)
		return dto.CompareOutput{Applied: true, Phase: domain.PhaseFailed.String(), Reason: reason}, nil
	}
	i.record(ctx, "compare_succeeded", "")
	return dto.CompareOutput{Applied: true, Phase: domain.PhaseSucceeded.String(), Comparison: result}, nil
}

func (i *Interactor) History(ctx context.Context) ([]dto.ActivityOutput, error) {
	if i.activity == nil {
		return nil, nil
	}
	entries, err := i.activity.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActivityOutput, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ActivityOutput{ID: e.ID, At: e.At, Kind: e.Kind, Detail: e.Detail})
	}
	return out, nil
}

// record projects an activity row best-effort; the workflow never fails
// because its trace could not be written.
func (i *Interactor) record(ctx context.Context, kind, detail string) {
	if i.activity == nil {
		return
	}
	_ = i.activity.Record(ctx, domain.Activity{
		ID:     i.ids.New(),
		At:     i.clock.Now(),
		Kind:   kind,
		Detail: detail,
	})
}

// failureReason maps a gateway error to the user-facing failure reason:
// the remote service's structured message when present, otherwise the
// generic network-or-timeout text.
func failureReason(err error) string {
	var remote *apperrors.RemoteError
	if errors.As(err, &remote) {
		return remote.Error()
	}
	return "network or timeout"
}

// sessionView must be called with the mutex held.
func (i *Interactor) sessionView() dto.SessionView {
	specs := i.svc.Specs()
	titles := make([]string, 0, len(specs))
	index := 0
	for n, spec := range specs {
		titles = append(titles, spec.Title)
		if spec.ID == i.sess.Step {
			index = n
		}
	}
	view := dto.SessionView{
		Step:       i.sess.Step.String(),
		StepIndex:  index,
		StepTitles: titles,
		APIKey:     i.sess.APIKey,
		Prompt:     i.sess.Options.Prompt,
		Venue:      i.sess.Options.Venue,
		Phase:      i.sess.Submission.Phase.String(),
		Result:     i.sess.Submission.Result,
		Reason:     i.sess.Submission.Reason,
	}
	if p := i.sess.Paper; p != nil {
		view.Paper = &dto.PaperView{
			Name:         p.Name,
			Size:         p.Size,
			ContentType:  p.ContentType,
			Pages:        p.Pages,
			Accepted:     p.Accepted,
			RejectReason: p.RejectReason,
		}
	}
	return view
}

func comparisonView(comp domain.ComparisonSession) dto.ComparisonView {
	return dto.ComparisonView{
		Evaluation:  comp.Evaluation,
		HumanReview: comp.HumanReview,
		Phase:       comp.State.Phase.String(),
		Result:      comp.State.Result,
		Reason:      comp.State.Reason,
	}
}
