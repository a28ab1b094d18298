package jserial

// ClassFlag is the serialization strategy recorded in a class descriptor.
// Only four combinations of the SC_* bits are legal.
type ClassFlag int

const (
	// FlagNoWrite: Serializable without a writeObject method.
	FlagNoWrite ClassFlag = iota
	// FlagWrite: Serializable with a writeObject method; field data is
	// followed by annotations.
	FlagWrite
	// FlagExt: Externalizable written with protocol version 1.
	FlagExt
	// FlagExtBlock: Externalizable written in block data mode.
	FlagExtBlock
)

func classFlagFrom(b byte) (ClassFlag, error) {
	switch {
	case b&ScSerializable != 0 && b&ScWriteMethod == 0:
		return FlagNoWrite, nil
	case b&ScSerializable != 0:
		return FlagWrite, nil
	case b&ScExternalizable != 0 && b&ScBlockData == 0:
		return FlagExt, nil
	case b&ScExternalizable != 0:
		return FlagExtBlock, nil
	default:
		return 0, invalidStream("unexpected class flag")
	}
}

func (f ClassFlag) String() string {
	switch f {
	case FlagNoWrite:
		return "NoWrite"
	case FlagWrite:
		return "Write"
	case FlagExt:
		return "Ext"
	case FlagExtBlock:
		return "ExtBlock"
	default:
		return "Unknown"
	}
}
