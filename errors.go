package promise

const (
	nilTaskPanicMsg      = "promise: the provided task function is nil"
	nilCallbackPanicMsg  = "promise: the provided callback is nil"
	nilSchedulerPanicMsg = "promise: the provided scheduler is nil"
	zeroPromisePanicMsg  = "promise: Start called on a zero Promise value"
)
