package shell

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/atomicstack/wirecalc/internal/layout"
	"github.com/atomicstack/wirecalc/internal/panel"
	"github.com/atomicstack/wirecalc/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/cucumber/godog"
)

// ShellBDDTestContext holds the state shared by the steps of one scenario.
type ShellBDDTestContext struct {
	registry   *panel.Registry
	shell      *Shell
	activeID   string
	width      int
	height     int
	drawerOpen bool
	frame      Frame
	lines      []string
	calls      []string
}

func iconByName(name string) (panel.Icon, error) {
	for icon := panel.IconNone; icon <= panel.IconBook; icon++ {
		if icon.String() == name {
			return icon, nil
		}
	}
	return panel.IconNone, fmt.Errorf("unknown icon %q", name)
}

func (c *ShellBDDTestContext) aRegistryWithThePanels(table *godog.Table) error {
	var descs []panel.Descriptor
	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		if len(row.Cells) != 3 {
			return fmt.Errorf("row %d: expected 3 cells, got %d", i, len(row.Cells))
		}
		icon, err := iconByName(row.Cells[2].Value)
		if err != nil {
			return err
		}
		descs = append(descs, panel.Descriptor{ID: row.Cells[0].Value, Label: row.Cells[1].Value, Icon: icon})
	}
	reg, err := panel.NewRegistry(descs...)
	if err != nil {
		return err
	}
	c.registry = reg
	c.shell = New(reg, WithStyles(theme.Plain()))
	return nil
}

func (c *ShellBDDTestContext) theActivePanelIs(id string) error {
	c.activeID = id
	return nil
}

func (c *ShellBDDTestContext) theTerminalIs(width, height int) error {
	c.width, c.height = width, height
	return nil
}

func (c *ShellBDDTestContext) theDrawerIsOpened() error {
	c.drawerOpen = true
	return nil
}

func (c *ShellBDDTestContext) theShellIsRendered() error {
	c.frame = Frame{
		Geometry: layout.Compute(c.width, c.height, c.drawerOpen, layout.Options{}),
		Focus:    -1,
	}
	c.lines = strings.Split(c.shell.Render("content", c.activeID, c.frame), "\n")
	return nil
}

// drawerLine returns the body row showing label and its screen row.
func (c *ShellBDDTestContext) drawerLine(label string) (string, int, error) {
	for y := layout.TopBarRows; y < len(c.lines); y++ {
		if strings.Contains(c.lines[y], label) {
			return c.lines[y], y, nil
		}
	}
	return "", 0, fmt.Errorf("no drawer row shows %q", label)
}

func (c *ShellBDDTestContext) theEntryIsShownAsSelected(label string) error {
	line, _, err := c.drawerLine(label)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(line, markerSelected) {
		return fmt.Errorf("%q is not selected: %q", label, line)
	}
	return nil
}

func (c *ShellBDDTestContext) theEntryIsNotShownAsSelected(label string) error {
	line, _, err := c.drawerLine(label)
	if err != nil {
		return err
	}
	if strings.HasPrefix(line, markerSelected) {
		return fmt.Errorf("%q is selected: %q", label, line)
	}
	return nil
}

func (c *ShellBDDTestContext) noEntryIsShownAsSelected() error {
	for _, line := range c.lines {
		if strings.Contains(line, markerSelected) {
			return fmt.Errorf("unexpected selected row %q", line)
		}
	}
	for _, e := range c.shell.Entries(c.activeID, -1) {
		if e.Selected {
			return fmt.Errorf("entry %q reports selected", e.Descriptor.ID)
		}
	}
	return nil
}

func (c *ShellBDDTestContext) everyEntryHasALabel() error {
	for _, d := range c.registry.List() {
		if strings.TrimSpace(d.Label) == "" {
			return fmt.Errorf("panel %q has an empty label", d.ID)
		}
		if _, _, err := c.drawerLine(d.Label); err != nil {
			return err
		}
	}
	return nil
}

func (c *ShellBDDTestContext) theUserClicksTheEntry(label string) error {
	_, y, err := c.drawerLine(label)
	if err != nil {
		return err
	}
	id, ok := c.shell.EntryAt(1, y, c.frame)
	if !ok {
		return fmt.Errorf("row %d is not a drawer entry", y)
	}
	c.shell.Select(id, func(id string) tea.Cmd {
		c.calls = append(c.calls, id)
		return nil
	})
	return nil
}

func (c *ShellBDDTestContext) theCallbackIsInvokedExactlyOnceWith(id string) error {
	if len(c.calls) != 1 || c.calls[0] != id {
		return fmt.Errorf("expected one call with %q, got %v", id, c.calls)
	}
	return nil
}

func (c *ShellBDDTestContext) theActivePanelIsStill(id string) error {
	if c.activeID != id {
		return fmt.Errorf("active panel changed to %q", c.activeID)
	}
	if err := c.theShellIsRendered(); err != nil {
		return err
	}
	d, ok := c.registry.Find(id)
	if !ok {
		return fmt.Errorf("panel %q not registered", id)
	}
	return c.theEntryIsShownAsSelected(d.Label)
}

func (c *ShellBDDTestContext) theDrawerIsVisible() error {
	if !c.frame.Geometry.DrawerVisible || !strings.Contains(strings.Join(c.lines, "\n"), drawerHeading) {
		return errors.New("drawer is not visible")
	}
	return nil
}

func (c *ShellBDDTestContext) theDrawerIsHidden() error {
	if c.frame.Geometry.DrawerVisible || strings.Contains(strings.Join(c.lines, "\n"), drawerHeading) {
		return errors.New("drawer is visible")
	}
	return nil
}

func (c *ShellBDDTestContext) theContentRegionIsCellsWide(width int) error {
	if got := c.frame.Geometry.ContentWidth; got != width {
		return fmt.Errorf("content width %d, want %d", got, width)
	}
	return nil
}

func (c *ShellBDDTestContext) everyLineIsCellsWide(width int) error {
	for i, line := range c.lines {
		if got := ansi.StringWidth(line); got != width {
			return fmt.Errorf("line %d is %d cells wide, want %d", i, got, width)
		}
	}
	return nil
}

func TestShellBDD(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: func(ctx *godog.ScenarioContext) {
			testCtx := &ShellBDDTestContext{}

			// Background
			ctx.Step(`^a registry with the panels:$`, testCtx.aRegistryWithThePanels)

			// Inputs
			ctx.Step(`^the active panel is "([^"]*)"$`, testCtx.theActivePanelIs)
			ctx.Step(`^the terminal is (\d+) cells wide and (\d+) rows tall$`, testCtx.theTerminalIs)
			ctx.Step(`^the drawer is opened$`, testCtx.theDrawerIsOpened)
			ctx.Step(`^the shell is rendered$`, testCtx.theShellIsRendered)
			ctx.Step(`^the user clicks the "([^"]*)" entry$`, testCtx.theUserClicksTheEntry)

			// Highlighting
			ctx.Step(`^the "([^"]*)" entry is shown as selected$`, testCtx.theEntryIsShownAsSelected)
			ctx.Step(`^the "([^"]*)" entry is not shown as selected$`, testCtx.theEntryIsNotShownAsSelected)
			ctx.Step(`^no entry is shown as selected$`, testCtx.noEntryIsShownAsSelected)
			ctx.Step(`^every entry has a label$`, testCtx.everyEntryHasALabel)

			// Selection
			ctx.Step(`^the callback is invoked exactly once with "([^"]*)"$`, testCtx.theCallbackIsInvokedExactlyOnceWith)
			ctx.Step(`^the active panel is still "([^"]*)"$`, testCtx.theActivePanelIsStill)

			// Layout
			ctx.Step(`^the drawer is visible$`, testCtx.theDrawerIsVisible)
			ctx.Step(`^the drawer is hidden$`, testCtx.theDrawerIsHidden)
			ctx.Step(`^the content region is (\d+) cells wide$`, testCtx.theContentRegionIsCellsWide)
			ctx.Step(`^every line is (\d+) cells wide$`, testCtx.everyLineIsCellsWide)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
