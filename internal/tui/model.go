package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/mulbench/internal/errors"
	"github.com/agbru/mulbench/internal/harness"
	"github.com/agbru/mulbench/internal/multiply"
	"github.com/agbru/mulbench/internal/orchestration"
	"github.com/agbru/mulbench/internal/progress"
	"github.com/agbru/mulbench/internal/sysmon"
)

// Layout constants for the dashboard.
const (
	headerHeight       = 1
	footerHeight       = 1
	minBodyHeight      = 8
	MetricsPanelHeight = 7

	tickInterval = 500 * time.Millisecond
	// frameInterval paces the replay at 20 frames per second.
	frameInterval = 50 * time.Millisecond
)

// Job is the sweep the dashboard runs. Runner carries the options,
// verification flag and logger; its Progress and OnSample hooks are set by
// the dashboard.
type Job struct {
	Plan       *harness.Plan
	Algorithms []multiply.Algorithm
	Runner     harness.Runner
}

// LayoutManager holds terminal dimensions.
type LayoutManager struct {
	width  int
	height int
}

func (l LayoutManager) bodyHeight() int {
	return max(l.height-headerHeight-footerHeight, minBodyHeight)
}

func (l LayoutManager) metricsHeight() int {
	return min(MetricsPanelHeight, l.bodyHeight()/2)
}

func (l LayoutManager) chartHeight() int {
	return l.bodyHeight() - l.metricsHeight()
}

// Model is the root bubbletea model.
type Model struct {
	header  HeaderModel
	metrics MetricsModel
	chart   ChartModel
	footer  FooterModel
	keymap  KeyMap

	LayoutManager

	ctx       context.Context
	cancel    context.CancelFunc
	job       Job
	ref       *programRef
	paused    bool
	replayGen uint64

	done bool
	// stopping is set when the parent context ends mid-sweep; the model
	// waits for the runner to return its partial results before quitting.
	stopping bool
	results  *harness.Results
	err      error
	exitCode int
}

func NewModel(parentCtx context.Context, job Job, version string) Model {
	names := make([]string, len(job.Algorithms))
	for i, a := range job.Algorithms {
		names[i] = a.Name()
	}
	xMin, xMax := 0, 1
	if job.Plan != nil && len(job.Plan.Sizes) > 0 {
		xMin, xMax = job.Plan.Sizes[0], job.Plan.Sizes[len(job.Plan.Sizes)-1]
	}
	planText := ""
	if job.Plan != nil {
		planText = fmt.Sprintf("%d sizes x %d pairs, seed %d", len(job.Plan.Sizes), job.Plan.Pairs, job.Plan.Seed)
	}

	ctx, cancel := context.WithCancel(parentCtx)
	km := DefaultKeyMap()
	return Model{
		header:   NewHeaderModel(version, planText),
		metrics:  NewMetricsModel(names),
		chart:    NewChartModel(names, xMin, xMax),
		footer:   NewFooterModel(km),
		keymap:   km,
		ctx:      ctx,
		cancel:   cancel,
		job:      job,
		ref:      &programRef{},
		exitCode: apperrors.ExitSuccess,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startBenchmarkCmd(m.ref, m.ctx, m.job),
		watchContextCmd(m.ctx),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case SampleMsg:
		m.chart.AddSample(msg.Sample)
		if !m.paused {
			m.metrics.UpdateSample(msg.Sample)
		}
		return m, nil

	case ProgressMsg:
		m.chart.SetProgress(msg.AverageProgress, msg.ETA)
		return m, nil

	case FrameMsg:
		if msg.Generation != m.replayGen {
			return m, nil
		}
		if m.chart.Advance() {
			return m, frameCmd(m.replayGen)
		}
		m.footer.SetReplaying(false)
		return m, nil

	case TickMsg:
		if m.paused {
			return m, tickCmd()
		}
		cmds := []tea.Cmd{sampleMemStatsCmd(), sampleSysStatsCmd()}
		if !m.done {
			cmds = append(cmds, tickCmd())
		}
		return m, tea.Batch(cmds...)

	case MemStatsMsg:
		m.metrics.UpdateMemStats(msg)
		return m, nil

	case SysStatsMsg:
		m.chart.UpdateSysStats(msg.CPUPercent, msg.MemPercent)
		m.metrics.UpdateProcess(msg.ProcessRSS)
		return m, nil

	case RunCompleteMsg:
		m.done = true
		m.results = msg.Results
		m.err = msg.Err
		if !m.stopping {
			m.exitCode = exitCodeFor(msg.Err)
		}
		m.header.SetDone()
		m.chart.SetDone(m.header.Elapsed())
		m.footer.SetDone(true)
		m.footer.SetError(msg.Err != nil)
		if m.stopping {
			return m, tea.Quit
		}
		return m, nil

	case ContextCancelledMsg:
		if m.done || m.stopping {
			return m, nil
		}
		m.stopping = true
		m.exitCode = exitCodeFor(msg.Err)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if !m.done {
			m.exitCode = apperrors.ExitErrorCanceled
		}
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused
		m.chart.SetFrozen(m.paused)
		m.footer.SetPaused(m.paused)
		return m, nil

	case key.Matches(msg, m.keymap.Replay):
		if !m.chart.StartReplay() {
			return m, nil
		}
		m.replayGen++
		m.footer.SetReplaying(true)
		return m, frameCmd(m.replayGen)
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	body := lipgloss.JoinVertical(lipgloss.Left, m.metrics.View(), m.chart.View())
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.footer.View())
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.metrics.SetSize(m.width, m.metricsHeight())
	m.chart.SetSize(m.width, m.chartHeight())
}

// Results returns the sweep results once the run has finished, or nil.
func (m Model) Results() *harness.Results { return m.results }

// Run shows the dashboard while job executes and returns the results and
// the exit code. Results are nil if the user quit before the sweep
// finished; a timeout or signal returns the sizes completed so far.
func Run(ctx context.Context, job Job, version string) (*harness.Results, int) {
	initTUIStyles()

	model := NewModel(ctx, job, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.ref.SetProgram(p)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.cancel()
		if err != nil && m.exitCode == apperrors.ExitSuccess {
			return m.results, exitCodeFor(err)
		}
		return m.results, m.exitCode
	}
	if err != nil {
		return nil, exitCodeFor(err)
	}
	return nil, apperrors.ExitSuccess
}

func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return apperrors.ExitSuccess
	case errors.Is(err, harness.ErrMismatch):
		return apperrors.ExitErrorMismatch
	}
	return apperrors.ExitCodeFor(err)
}

// startBenchmarkCmd runs the sweep on the command goroutine and forwards
// progress and samples to the program.
func startBenchmarkCmd(ref *programRef, ctx context.Context, job Job) tea.Cmd {
	return func() tea.Msg {
		ch := make(chan progress.ProgressUpdate, max(1, len(job.Algorithms))*orchestration.ProgressBufferMultiplier)
		var wg sync.WaitGroup
		wg.Add(1)
		go (&TUIProgressReporter{ref: ref}).DisplayProgress(&wg, ch, len(job.Algorithms), io.Discard)

		runner := job.Runner
		runner.Progress = ch
		runner.OnSample = sampleForwarder(ref)
		res, err := runner.Run(ctx, job.Plan, job.Algorithms)

		close(ch)
		wg.Wait()
		return RunCompleteMsg{Results: res, Err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func frameCmd(gen uint64) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return FrameMsg{Generation: gen}
	})
}

func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return MemStatsMsg{
			Alloc:        ms.Alloc,
			HeapSys:      ms.HeapSys,
			NumGC:        ms.NumGC,
			PauseTotalNs: ms.PauseTotalNs,
			NumGoroutine: runtime.NumGoroutine(),
		}
	}
}

func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{CPUPercent: s.CPUPercent, MemPercent: s.MemPercent, ProcessRSS: s.ProcessRSS}
	}
}

func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
