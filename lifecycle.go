package terrain

import "fmt"

// Lifecycle tracks the Uninitialized -> Made transition of a generated object.
// Embed it and call MarkMade at the end of Make, CheckMade at the top of Build.
type Lifecycle struct {
	made bool
}

// MarkMade records that every enabled stage has been made.
func (l *Lifecycle) MarkMade() { l.made = true }

// Reset returns the object to the uninitialized state; the next Build fails
// until Make runs again.
func (l *Lifecycle) Reset() { l.made = false }

// Made reports whether Make has completed.
func (l *Lifecycle) Made() bool { return l.made }

// CheckMade returns ErrNotInitialized, tagged with method, when Make has not run.
func (l *Lifecycle) CheckMade(method string) error {
	if !l.made {
		return fmt.Errorf("%s: %w", method, ErrNotInitialized)
	}
	return nil
}
