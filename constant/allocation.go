package constant

// AllocationStrategy names the ordering policy applied to candidate batches.
type AllocationStrategy string

const (
	StrategyFIFO AllocationStrategy = "fifo"
	StrategyLIFO AllocationStrategy = "lifo"
	StrategyFEFO AllocationStrategy = "fefo"
)

func (s AllocationStrategy) Valid() bool {
	switch s {
	case StrategyFIFO, StrategyLIFO, StrategyFEFO:
		return true
	}
	return false
}

// AllocationIntent selects which bucket an allocation draw moves quantity into.
type AllocationIntent string

const (
	IntentReserve AllocationIntent = "reserve"
	IntentLock    AllocationIntent = "lock"
	IntentConsume AllocationIntent = "consume"
)

func (i AllocationIntent) Valid() bool {
	switch i {
	case IntentReserve, IntentLock, IntentConsume:
		return true
	}
	return false
}
