package promise

import (
	"time"

	"github.com/willowtreeapps/PinkyPromise/result"
)

// DelayCond selects which completions a Delay call applies to.
type DelayCond int

func (m DelayCond) String() string {
	switch m {
	case OnAll:
		return "OnAll"
	case OnSuccess:
		return "OnSuccess"
	case OnError:
		return "OnError"
	default:
		return "<unknown condition>"
	}
}

// any values other than the listed below will be ignored
const (
	OnAll     DelayCond = iota // the default behavior if no conditions are passed
	OnSuccess DelayCond = iota
	OnError   DelayCond = iota
)

type delayFlags struct {
	onSuccess bool
	onError   bool
}

var delayAllFlags = delayFlags{
	onSuccess: true,
	onError:   true,
}

func getDelayFlags(modes []DelayCond) delayFlags {
	if len(modes) == 0 {
		return delayAllFlags
	}

	f := delayFlags{}
	for _, m := range modes {
		switch m {
		case OnAll:
			f.onSuccess = true
			f.onError = true
		case OnSuccess:
			f.onSuccess = true
		case OnError:
			f.onError = true
		}
	}
	return f
}

// Delay returns a Promise that runs the receiver and sleeps for d before
// forwarding its Result, when the Result's state matches any of the given
// conditions (all states, if none are passed).
// The sleep happens on whatever call stack delivers the completion.
func (p Promise[T]) Delay(d time.Duration, cond ...DelayCond) Promise[T] {
	flags := getDelayFlags(cond)
	return Promise[T]{task: func(o Observer[T]) {
		p.Start(func(res result.Result[T]) {
			switch res.State() {
			case result.Fulfilled:
				if flags.onSuccess {
					time.Sleep(d)
				}
			case result.Rejected:
				if flags.onError {
					time.Sleep(d)
				}
			}
			o(res)
		})
	}}
}
