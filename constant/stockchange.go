package constant

// StockChangeType identifies the kind of committed quantity change a ledger
// fact describes. Every type has a fixed direction.
type StockChangeType string

const (
	StockChangeInbound        StockChangeType = "inbound"
	StockChangeReserve        StockChangeType = "reserve"
	StockChangeUnreserve      StockChangeType = "unreserve"
	StockChangeLock           StockChangeType = "lock"
	StockChangeUnlock         StockChangeType = "unlock"
	StockChangeConsume        StockChangeType = "consume"
	StockChangeAdjustIncrease StockChangeType = "adjust_increase"
	StockChangeAdjustDecrease StockChangeType = "adjust_decrease"
)

type StockChangeDirection int

const (
	DirectionIncrease StockChangeDirection = 1
	DirectionDecrease StockChangeDirection = -1
)

// Direction is relative to sellable availability: holds and consumption
// decrease it, inbound and hold releases increase it.
var StockChangeTypeDirection = map[StockChangeType]StockChangeDirection{
	StockChangeInbound:        DirectionIncrease,
	StockChangeReserve:        DirectionDecrease,
	StockChangeUnreserve:      DirectionIncrease,
	StockChangeLock:           DirectionDecrease,
	StockChangeUnlock:         DirectionIncrease,
	StockChangeConsume:        DirectionDecrease,
	StockChangeAdjustIncrease: DirectionIncrease,
	StockChangeAdjustDecrease: DirectionDecrease,
}
