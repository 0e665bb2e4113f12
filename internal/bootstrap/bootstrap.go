package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	goalinadapter "flowcat/internal/modules/goal/adapter/in"
	goaloutadapter "flowcat/internal/modules/goal/adapter/out"
	goalin "flowcat/internal/modules/goal/port/in"
	goalservice "flowcat/internal/modules/goal/service"
	goalusecase "flowcat/internal/modules/goal/usecase"
	timerinadapter "flowcat/internal/modules/timer/adapter/in"
	timeroutadapter "flowcat/internal/modules/timer/adapter/out"
	timerdomain "flowcat/internal/modules/timer/domain"
	timerin "flowcat/internal/modules/timer/port/in"
	timerservice "flowcat/internal/modules/timer/service"
	timerusecase "flowcat/internal/modules/timer/usecase"
	"flowcat/internal/platform/clock"
	"flowcat/internal/platform/config"
	"flowcat/internal/platform/id"
	"flowcat/internal/platform/randgen"
	uiapp "flowcat/internal/ui/app"
)

type App struct {
	GoalCLI  goalinadapter.CLIHandler
	TimerCLI timerinadapter.CLIHandler

	goalUC  goalin.Usecase
	timerUC timerin.Usecase
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}

	stateStore, err := goaloutadapter.NewFileStateStore(cfg.StatePath, ids)
	if err != nil {
		return nil, fmt.Errorf("open state store: %w", err)
	}
	goalSvc := goalservice.NewGoalService(clk, ids, stateStore, randgen.MathRand{})
	goalUC := goalusecase.NewInteractor(goalSvc)

	sessionLog, err := timeroutadapter.NewSQLiteSessionLog(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open session log: %w", err)
	}
	count, err := stateStore.SessionCount(context.Background())
	if err != nil {
		return nil, fmt.Errorf("load session count: %w", err)
	}
	timer := timerdomain.NewTimer(cfg.WorkDuration(), cfg.BreakDuration(), count)
	timerUC := timerusecase.NewInteractor(timerservice.NewTimerService(timer), goalUC, stateStore, sessionLog, clk)

	return &App{
		GoalCLI:  goalinadapter.NewCLIHandler(goalUC),
		TimerCLI: timerinadapter.NewCLIHandler(timerUC),
		goalUC:   goalUC,
		timerUC:  timerUC,
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.goalUC, app.timerUC)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
