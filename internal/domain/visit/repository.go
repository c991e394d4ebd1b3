package visit

import "context"

// Recorder persists or counts served greetings.
type Recorder interface {
	Record(ctx context.Context, v *Visit) error
}
