package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	gatewayinadapter "revguide/internal/modules/gateway/adapter/in"
	gatewayoutadapter "revguide/internal/modules/gateway/adapter/out"
	gatewayservice "revguide/internal/modules/gateway/service"
	gatewayusecase "revguide/internal/modules/gateway/usecase"
	paperinadapter "revguide/internal/modules/paper/adapter/in"
	paperoutadapter "revguide/internal/modules/paper/adapter/out"
	paperservice "revguide/internal/modules/paper/service"
	paperusecase "revguide/internal/modules/paper/usecase"
	workflowinadapter "revguide/internal/modules/workflow/adapter/in"
	workflowoutadapter "revguide/internal/modules/workflow/adapter/out"
	workflowin "revguide/internal/modules/workflow/port/in"
	workflowservice "revguide/internal/modules/workflow/service"
	workflowusecase "revguide/internal/modules/workflow/usecase"
	"revguide/internal/platform/clock"
	"revguide/internal/platform/config"
	"revguide/internal/platform/id"
	uiapp "revguide/internal/ui/app"
)

type App struct {
	WorkflowCLI workflowinadapter.CLIHandler
	GatewayCLI  gatewayinadapter.CLIHandler
	PaperCLI    paperinadapter.CLIHandler

	workflowUC workflowin.Usecase
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}

	paperUC := paperusecase.NewInteractor(paperservice.NewPaperService(
		paperoutadapter.NewLocalFileStore(),
		paperoutadapter.NewLocalPDFProber(),
	))

	gatewayUC := gatewayusecase.NewInteractor(gatewayservice.NewGatewayService(
		gatewayoutadapter.NewHTTPEvaluationEndpoint(cfg.BaseURL),
		gatewayoutadapter.NewHTTPComparisonEndpoint(cfg.BaseURL),
		cfg.Timeout,
	))

	activityStore, err := workflowoutadapter.NewSQLiteActivityStore("")
	if err != nil {
		return nil, fmt.Errorf("new activity store: %w", err)
	}
	workflowUC := workflowusecase.NewInteractor(
		workflowservice.NewWorkflowService(cfg.Venues),
		gatewayUC,
		paperUC,
		activityStore,
		clk,
		ids,
	)

	return &App{
		WorkflowCLI: workflowinadapter.NewCLIHandler(workflowUC),
		GatewayCLI:  gatewayinadapter.NewCLIHandler(gatewayUC),
		PaperCLI:    paperinadapter.NewCLIHandler(paperUC),
		workflowUC:  workflowUC,
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.workflowUC)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
