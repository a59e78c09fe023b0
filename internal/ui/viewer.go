package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"cosx/internal/config"
	"cosx/internal/domain"
	"cosx/internal/extract"
)

// Viewer displays planned scripts in an interactive TUI
type Viewer interface {
	View(plan *extract.Plan) error
}

// BlockViewer browses test blocks and their normalized scripts
type BlockViewer struct {
	config *config.Config
}

// NewBlockViewer creates a new BlockViewer
func NewBlockViewer(cfg *config.Config) *BlockViewer {
	return &BlockViewer{config: cfg}
}

// browseEntry pairs a block with the script that would be written for it
type browseEntry struct {
	block   domain.TestBlock
	payload string
	written bool
}

func browseEntries(plan *extract.Plan) []browseEntry {
	files := make(map[string][]domain.PlannedFile)
	for _, f := range plan.Files {
		files[f.Block.Source] = append(files[f.Block.Source], f)
	}

	entries := make([]browseEntry, 0, len(plan.Blocks))
	for _, block := range plan.Blocks {
		entry := browseEntry{block: block}
		for _, f := range files[block.Source] {
			if f.Block.Offset == block.Offset {
				entry.payload = f.Payload
				entry.written = true
				break
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// View displays the plan until the user quits
func (bv *BlockViewer) View(plan *extract.Plan) error {
	if len(plan.Blocks) == 0 {
		color.Yellow("No test blocks found")
		return nil
	}

	entries := browseEntries(plan)

	// Create the application
	app := tview.NewApplication()

	// Create list for test blocks (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i, entry := range entries {
		list.AddItem(listItemText(i, entry), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// Location header above the script
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	// Script body (right side); scripts are shown verbatim, not as color tags
	scriptView := tview.NewTextView().
		SetDynamicColors(false).
		SetWrap(true).
		SetWordWrap(true)

	scriptContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(scriptView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(scriptContainer, 0, 1, false)

	// List on left (1/3), script on right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" CAOS scripts (%d blocks, %d to write) | ↑↓ navigate, → view script, ← back, q or Ctrl+C to exit ",
			len(entries), len(plan.Files)))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(entries) {
			return
		}
		entry := entries[index]
		statsView.SetText(bv.formatLocation(entry))
		scriptView.SetText(formatScript(entry)).ScrollToBeginning()
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(scriptView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	scriptView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

func listItemText(index int, entry browseEntry) string {
	name := tview.Escape(entry.block.Name)
	if !entry.written {
		return fmt.Sprintf("[gray]%d. %s (empty)[white]", index+1, name)
	}
	if entry.block.Indirect {
		return fmt.Sprintf("[yellow]%d.[white] %s [cyan]*[white]", index+1, name)
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, name)
}

// formatLocation formats the header for a block using tview color tags
func (bv *BlockViewer) formatLocation(entry browseEntry) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[cyan]source:[white] [yellow]%s:%d[white]\n",
		tview.Escape(entry.block.Source), entry.block.Line)
	if entry.written {
		fmt.Fprintf(&builder, "[cyan]output:[white] %s", tview.Escape(bv.config.GetOutputPath(entry.block.Name)))
	} else {
		builder.WriteString("[red]empty literal, nothing is written[white]")
	}
	if entry.block.Indirect {
		builder.WriteString(" [gray](from script variable)[white]")
	}

	return builder.String()
}

func formatScript(entry browseEntry) string {
	if !entry.written {
		return entry.block.Raw
	}
	return entry.payload
}
