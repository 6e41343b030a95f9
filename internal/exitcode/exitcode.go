package exitcode

const (
	Success            = 0
	UsageError         = 1
	DivisionByZero     = 2
	ArithmeticOverflow = 3
)
