package constant

type BatchStatus int

const (
	BatchStatusPending   BatchStatus = 1
	BatchStatusAvailable BatchStatus = 2
	BatchStatusExpired   BatchStatus = 3
	BatchStatusDamaged   BatchStatus = 4
	BatchStatusConsumed  BatchStatus = 5
)

// Allocatable reports whether batches in this status may take part in allocation.
// Expired and damaged batches are quarantined, consumed batches are drained.
func (s BatchStatus) Allocatable() bool {
	return s == BatchStatusAvailable
}

type QualityGrade string

const (
	QualityGradeS QualityGrade = "S"
	QualityGradeA QualityGrade = "A"
	QualityGradeB QualityGrade = "B"
	QualityGradeC QualityGrade = "C"
)

func (g QualityGrade) Valid() bool {
	switch g {
	case QualityGradeS, QualityGradeA, QualityGradeB, QualityGradeC:
		return true
	}
	return false
}

// ConsumeFrom selects which bucket a consume operation draws down.
type ConsumeFrom string

const (
	ConsumeFromAvailable ConsumeFrom = "available"
	ConsumeFromReserved  ConsumeFrom = "reserved"
	ConsumeFromLocked    ConsumeFrom = "locked"
)

func (f ConsumeFrom) Valid() bool {
	switch f {
	case ConsumeFromAvailable, ConsumeFromReserved, ConsumeFromLocked:
		return true
	}
	return false
}
