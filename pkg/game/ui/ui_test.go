package ui

import (
	"image"
	"reflect"
	"testing"

	"westmarch/pkg/engine/input"
)

func press(x, y int) input.PointerSample   { return input.PointerSample{X: x, Y: y, LeftDown: true} }
func release(x, y int) input.PointerSample { return input.PointerSample{X: x, Y: y} }

func TestNewToggleButton_DesignedPlacement(t *testing.T) {
	run := NewToggleButton(ButtonRun)
	if run.Location != RunButtonLocation {
		t.Errorf("run Location = %v, want %v", run.Location, RunButtonLocation)
	}
	menu := NewToggleButton(ButtonMenu)
	if !menu.Contains(MenuButtonLocation.X, MenuButtonLocation.Y) {
		t.Error("menu button does not contain its own origin")
	}
	if menu.Contains(MenuButtonLocation.X+MenuButtonSize.X, MenuButtonLocation.Y) {
		t.Error("menu button contains the point just past its right edge")
	}
}

func TestMiniButtons_InsideMiniPanelOnControlBar(t *testing.T) {
	panel := image.Rectangle{Min: MiniPanelLocation, Max: MiniPanelLocation.Add(MiniPanelSize)}
	menu := NewToggleButton(ButtonMenu).Bounds()
	for _, kind := range []ButtonKind{ButtonCharacter, ButtonInventory} {
		r := NewToggleButton(kind).Bounds()
		if !r.In(panel) {
			t.Errorf("%s bounds %v not inside mini panel %v", kind, r, panel)
		}
		if r.Overlaps(menu) {
			t.Errorf("%s bounds %v overlap the menu button %v", kind, r, menu)
		}
		// Below the bar edge at y=530, so clicks never move the player.
		if r.Min.Y <= 530 {
			t.Errorf("%s top = %d, want below the control bar edge", kind, r.Min.Y)
		}
	}
}

func TestToggleButton_UpdateTogglesOnPressEdge(t *testing.T) {
	b := NewToggleButton(ButtonRun)
	var got []bool
	b.OnToggle(func(on bool) { got = append(got, on) })

	x, y := RunButtonLocation.X+2, RunButtonLocation.Y+2
	b.Update(press(x, y))   // edge: on
	b.Update(press(x, y))   // held: nothing
	b.Update(release(x, y)) // release: nothing
	b.Update(press(x, y))   // edge: off

	if want := []bool{true, false}; !reflect.DeepEqual(got, want) {
		t.Errorf("handler calls = %v, want %v", got, want)
	}
	if b.Toggled() {
		t.Error("Toggled() = true, want false after two presses")
	}
}

func TestToggleButton_PressOutsideIgnored(t *testing.T) {
	b := NewToggleButton(ButtonRun)
	b.Update(press(10, 10))
	if b.Toggled() {
		t.Error("press outside bounds toggled the button")
	}
	// Dragging onto the button while held is not a press.
	b.Update(press(RunButtonLocation.X+1, RunButtonLocation.Y+1))
	if b.Toggled() {
		t.Error("drag onto button toggled it")
	}
}

func TestToggleButton_SetToggledNotifiesOnChangeOnly(t *testing.T) {
	b := NewToggleButton(ButtonMenu)
	calls := 0
	b.OnToggle(func(bool) { calls++ })
	b.SetToggled(false)
	b.SetToggled(true)
	b.SetToggled(true)
	if calls != 1 {
		t.Errorf("handler calls = %d, want 1", calls)
	}
}

func TestEvents_DrainInOrder(t *testing.T) {
	ev := NewEvents()
	run := NewToggleButton(ButtonRun)
	menu := NewToggleButton(ButtonMenu)
	ev.Watch(run)
	ev.Watch(menu)

	run.Toggle()
	menu.Toggle()
	run.Toggle()

	var got []ToggleEvent
	n := ev.Drain(func(e ToggleEvent) { got = append(got, e) })
	want := []ToggleEvent{
		{Button: ButtonRun, On: true},
		{Button: ButtonMenu, On: true},
		{Button: ButtonRun, On: false},
	}
	if n != 3 || !reflect.DeepEqual(got, want) {
		t.Errorf("Drain = %d %v, want 3 %v", n, got, want)
	}
	if !ev.Empty() {
		t.Error("Empty() = false after Drain")
	}
	if n := ev.Drain(func(ToggleEvent) { t.Error("unexpected event") }); n != 0 {
		t.Errorf("second Drain = %d, want 0", n)
	}
}
