package engine

import "fmt"

// Algorithm is the scheduling policy tag: 0=FCFS, 1=SJF, 2=SRTF,
// 3=PRIO_NP, 4=PRIO_P, 5=RR, 6=MLFQ, 7=MLQ.
type Algorithm int

const (
	FCFS   Algorithm = 0
	SJF    Algorithm = 1
	SRTF   Algorithm = 2
	PrioNP Algorithm = 3
	PrioP  Algorithm = 4
	RR     Algorithm = 5
	MLFQ   Algorithm = 6
	MLQ    Algorithm = 7
)

// Constants fixed by the scheduling policies, not user-tunable.
const (
	PriorityAgingRate    = 5
	Q1Quantum            = 8
	Q2Quantum            = 16
	Q3PromotionThreshold = 50
	MLQQ2Quantum         = 10
	IdlePID              = -1
)

func (a Algorithm) String() string {
	switch a {
	case FCFS:
		return "FCFS"
	case SJF:
		return "SJF"
	case SRTF:
		return "SRTF"
	case PrioNP:
		return "PRIO_NP"
	case PrioP:
		return "PRIO_P"
	case RR:
		return "RR"
	case MLFQ:
		return "MLFQ"
	case MLQ:
		return "MLQ"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithmCode rejects an unknown algorithm tag instead of letting
// it default to FCFS.
func ParseAlgorithmCode(code int) (Algorithm, error) {
	switch Algorithm(code) {
	case FCFS, SJF, SRTF, PrioNP, PrioP, RR, MLFQ, MLQ:
		return Algorithm(code), nil
	default:
		return 0, fmt.Errorf("unknown algorithm code %d", code)
	}
}

// nonPreemptive reports whether the algorithm always runs its chosen
// process to completion: FCFS, SJF, PRIO_NP.
func (a Algorithm) nonPreemptive() bool {
	return a == FCFS || a == SJF || a == PrioNP
}

// usesAging reports whether priority aging applies.
func (a Algorithm) usesAging() bool {
	return a == PrioNP || a == PrioP
}
