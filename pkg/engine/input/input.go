package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ScriptReader replays a line-oriented input script as frames.
//
// Each non-blank line is either a pointer sample followed by an optional
// repeat count:
//
//	460 300 down 3
//	460 300 up
//
// or one or more key codes ("r", "i", "escape") that are delivered with the
// next pointer frame. Lines starting with '#' are comments.
type ScriptReader struct {
	r       *bufio.Reader
	line    int
	last    PointerSample
	pending []string
	repeat  int
	err     error
	done    bool
}

// NewScriptReader creates a reader over a script source
func NewScriptReader(r io.Reader) *ScriptReader {
	return &ScriptReader{r: bufio.NewReader(r)}
}

// Err returns the first parse or read error, if any.
func (s *ScriptReader) Err() error {
	return s.err
}

// Next returns the next frame of the script.
func (s *ScriptReader) Next() (Frame, bool) {
	if s.repeat > 0 {
		s.repeat--
		return Frame{Device: DeviceScript, Pointer: s.last}, true
	}
	for !s.done {
		raw, err := s.r.ReadString('\n')
		if err != nil {
			s.done = true
			if !errors.Is(err, io.EOF) {
				s.err = fmt.Errorf("read script: %w", err)
				return Frame{}, false
			}
		}
		s.line++

		text := strings.TrimSpace(raw)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if _, convErr := strconv.Atoi(fields[0]); convErr != nil {
			s.pending = append(s.pending, fields...)
			continue
		}

		sample, repeat, perr := parsePointerLine(fields)
		if perr != nil {
			s.err = fmt.Errorf("script line %d: %w", s.line, perr)
			s.done = true
			return Frame{}, false
		}
		s.last = sample
		s.repeat = repeat - 1
		frame := Frame{Device: DeviceScript, Pointer: sample, Codes: s.pending}
		s.pending = nil
		return frame, true
	}

	// Trailing key codes still get delivered with the last pointer position.
	if len(s.pending) > 0 && s.err == nil {
		frame := Frame{Device: DeviceScript, Pointer: s.last, Codes: s.pending}
		s.pending = nil
		return frame, true
	}
	return Frame{}, false
}

func parsePointerLine(fields []string) (PointerSample, int, error) {
	if len(fields) < 3 || len(fields) > 4 {
		return PointerSample{}, 0, fmt.Errorf("want \"x y down|up [count]\", got %q", strings.Join(fields, " "))
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return PointerSample{}, 0, fmt.Errorf("bad x %q: %w", fields[0], err)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return PointerSample{}, 0, fmt.Errorf("bad y %q: %w", fields[1], err)
	}

	var down bool
	switch fields[2] {
	case "down", "1":
		down = true
	case "up", "0":
		down = false
	default:
		return PointerSample{}, 0, fmt.Errorf("bad button state %q", fields[2])
	}

	repeat := 1
	if len(fields) == 4 {
		repeat, err = strconv.Atoi(fields[3])
		if err != nil || repeat < 1 {
			return PointerSample{}, 0, fmt.Errorf("bad repeat count %q", fields[3])
		}
	}
	return PointerSample{X: x, Y: y, LeftDown: down}, repeat, nil
}
