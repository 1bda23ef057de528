package input

import (
	"reflect"
	"strings"
	"testing"
)

func collect(t *testing.T, s *ScriptReader) []Frame {
	t.Helper()
	var frames []Frame
	for {
		f, ok := s.Next()
		if !ok {
			break
		}
		frames = append(frames, f)
	}
	return frames
}

func TestScriptReader_PointerAndCodes(t *testing.T) {
	src := `# walk right, toggle run, release
460 300 down
r
460 300 down 2
460 300 up`
	s := NewScriptReader(strings.NewReader(src))
	frames := collect(t, s)
	if err := s.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}

	want := []Frame{
		{Device: DeviceScript, Pointer: PointerSample{X: 460, Y: 300, LeftDown: true}},
		{Device: DeviceScript, Pointer: PointerSample{X: 460, Y: 300, LeftDown: true}, Codes: []string{"r"}},
		{Device: DeviceScript, Pointer: PointerSample{X: 460, Y: 300, LeftDown: true}},
		{Device: DeviceScript, Pointer: PointerSample{X: 460, Y: 300, LeftDown: false}},
	}
	if !reflect.DeepEqual(frames, want) {
		t.Errorf("frames = %+v, want %+v", frames, want)
	}
}

func TestScriptReader_TrailingCodesUseLastPointer(t *testing.T) {
	s := NewScriptReader(strings.NewReader("100 200 up\ni c\n"))
	frames := collect(t, s)
	if len(frames) != 2 {
		t.Fatalf("len(frames) = %d, want 2", len(frames))
	}
	last := frames[1]
	if last.Pointer != (PointerSample{X: 100, Y: 200}) {
		t.Errorf("trailing frame pointer = %+v, want {100 200 false}", last.Pointer)
	}
	if !reflect.DeepEqual(last.Codes, []string{"i", "c"}) {
		t.Errorf("trailing frame codes = %v, want [i c]", last.Codes)
	}
}

func TestScriptReader_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"bad button", "1 2 sideways", "script line 1"},
		{"short line", "\n\n1 2", "script line 3"},
		{"bad y", "1 y down", "bad y"},
		{"zero repeat", "1 2 down 0", "bad repeat count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScriptReader(strings.NewReader(tt.src))
			collect(t, s)
			if s.Err() == nil || !strings.Contains(s.Err().Error(), tt.want) {
				t.Errorf("Err() = %v, want error containing %q", s.Err(), tt.want)
			}
		})
	}
}

func TestMapToIntent_DefaultBindings(t *testing.T) {
	ResetBindings()
	tests := map[string]Action{
		"r":       ActionToggleRun,
		"i":       ActionToggleInventory,
		"c":       ActionToggleCharacter,
		"escape":  ActionToggleMenu,
		"q":       ActionQuit,
		"unknown": ActionNone,
	}
	for code, want := range tests {
		got := MapToIntent(NewDebouncedInput(RawInput{Device: DeviceKeyboard, Code: code}))
		if got.Action != want {
			t.Errorf("MapToIntent(%q) = %s, want %s", code, ActionName(got.Action), ActionName(want))
		}
	}
}

func TestIntentsFor_SkipsUnbound(t *testing.T) {
	ResetBindings()
	got := IntentsFor(DeviceScript, []string{"zz", "r", "i"})
	want := []Intent{{Action: ActionToggleRun}, {Action: ActionToggleInventory}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("IntentsFor = %v, want %v", got, want)
	}
}

func TestSetSingleBinding_KeepsReserved(t *testing.T) {
	ResetBindings()
	defer ResetBindings()

	SetSingleBinding(ActionToggleRun, "shift")
	byAction := GetBindingsByAction()
	if !reflect.DeepEqual(byAction[ActionToggleRun], []string{"shift"}) {
		t.Errorf("run bindings = %v, want [shift]", byAction[ActionToggleRun])
	}

	// Reserved codes can neither be stolen nor cleared.
	SetSingleBinding(ActionQuit, "escape")
	SetSingleBinding(ActionToggleMenu, "m")
	if got := MapToIntent(DebouncedInput{Code: "escape"}); got.Action != ActionToggleMenu {
		t.Errorf("escape -> %s, want Toggle Menu", ActionName(got.Action))
	}
	if got := MapToIntent(DebouncedInput{Code: "m"}); got.Action != ActionToggleMenu {
		t.Errorf("m -> %s, want Toggle Menu", ActionName(got.Action))
	}
}

func TestApplyBindings_RebindsByName(t *testing.T) {
	ResetBindings()
	defer ResetBindings()

	if err := ApplyBindings(map[string]string{"run": "shift", "quit": "x"}); err != nil {
		t.Fatalf("ApplyBindings() error = %v", err)
	}
	byAction := GetBindingsByAction()
	if !reflect.DeepEqual(byAction[ActionToggleRun], []string{"shift"}) {
		t.Errorf("run bindings = %v, want [shift]", byAction[ActionToggleRun])
	}
	if got := MapToIntent(DebouncedInput{Code: "q"}); got.Action != ActionNone {
		t.Errorf("q -> %s after rebinding quit, want None", ActionName(got.Action))
	}
	if got := MapToIntent(DebouncedInput{Code: "x"}); got.Action != ActionQuit {
		t.Errorf("x -> %s, want Quit", ActionName(got.Action))
	}
}

func TestApplyBindings_Errors(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[string]string
		want     string
	}{
		{"unknown action", map[string]string{"jump": "j"}, `unknown action "jump"`},
		{"reserved code", map[string]string{"quit": "escape"}, "reserved"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetBindings()
			defer ResetBindings()
			err := ApplyBindings(tt.bindings)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("ApplyBindings() error = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestActionByName(t *testing.T) {
	for name, want := range map[string]Action{"run": ActionToggleRun, "menu": ActionToggleMenu} {
		if got, ok := ActionByName(name); !ok || got != want {
			t.Errorf("ActionByName(%q) = %s, %v, want %s", name, ActionName(got), ok, ActionName(want))
		}
	}
	if _, ok := ActionByName("none"); ok {
		t.Error(`ActionByName("none") ok = true, want false`)
	}
}
