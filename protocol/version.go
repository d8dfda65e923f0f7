package protocol

// Protocol version constants named after the Bedrock release that
// introduced the wire change they gate. Values approximate the real
// network protocol numbers for those releases; what matters for the codec
// is only that they are monotonically increasing and compared with
// ordinary integer inequalities, per the version-gate design in §4.3.
const (
	Proto1_13_0   uint32 = 332
	Proto1_14_60  uint32 = 390
	Proto1_16_0   uint32 = 407
	Proto1_16_200 uint32 = 419
	Proto1_17_10  uint32 = 440
	Proto1_18_10  uint32 = 475
	Proto1_19_50  uint32 = 534
	Proto1_19_80  uint32 = 554
)
