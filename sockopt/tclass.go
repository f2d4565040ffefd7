package sockopt

import "fmt"

// TrafficClass is the value of the IPv4 TOS byte or of the IPv6 traffic
// class: a 6 bits differentiated services code point followed by 2 bits of
// explicit congestion notification.
type TrafficClass uint8

type ECN uint8

const (
	NotECT ECN = 0b00
	ECT1   ECN = 0b01
	ECT0   ECN = 0b10
	CE     ECN = 0b11
)

func (e ECN) String() string {
	switch e & 0b11 {
	case ECT1:
		return "ECT(1)"
	case ECT0:
		return "ECT(0)"
	case CE:
		return "CE"
	default:
		return "Not-ECT"
	}
}

func (tc TrafficClass) ECN() ECN { return ECN(tc & 0b11) }

func (tc TrafficClass) DSCP() uint8 { return uint8(tc >> 2) }

func (tc TrafficClass) WithECN(ecn ECN) TrafficClass {
	return tc&^0b11 | TrafficClass(ecn&0b11)
}

func (tc TrafficClass) WithDSCP(dscp uint8) TrafficClass {
	return tc&0b11 | TrafficClass(dscp&0b111111)<<2
}

func (tc TrafficClass) String() string {
	return fmt.Sprintf("dscp=%d,ecn=%s", tc.DSCP(), tc.ECN())
}

// TOS returns an IP_TOS option carrying tc.
func TOS(tc TrafficClass) *Int {
	return &Int{Key: IPv4TOS, Value: int32(tc)}
}

// TClass returns an IPV6_TCLASS option carrying tc.
func TClass(tc TrafficClass) *Int {
	return &Int{Key: IPv6TClass, Value: int32(tc)}
}

// TrafficClass interprets the value of o as a traffic class.
func (o *Int) TrafficClass() TrafficClass { return TrafficClass(o.Value) }
