package jserial

// Marker is the kind of record that follows in the stream.
type Marker byte

const (
	MarkerNull           = Marker(TcNull)
	MarkerReference      = Marker(TcReference)
	MarkerClassDesc      = Marker(TcClassdesc)
	MarkerObject         = Marker(TcObject)
	MarkerString         = Marker(TcString)
	MarkerArray          = Marker(TcArray)
	MarkerClass          = Marker(TcClass)
	MarkerBlockData      = Marker(TcBlockdata)
	MarkerEndBlockData   = Marker(TcEndblockdata)
	MarkerReset          = Marker(TcReset)
	MarkerBlockDataLong  = Marker(TcBlockdatalong)
	MarkerException      = Marker(TcException)
	MarkerLongString     = Marker(TcLongstring)
	MarkerProxyClassDesc = Marker(TcProxyclassdesc)
	MarkerEnum           = Marker(TcEnum)
)

var markerNames = [...]string{
	"TC_NULL",
	"TC_REFERENCE",
	"TC_CLASSDESC",
	"TC_OBJECT",
	"TC_STRING",
	"TC_ARRAY",
	"TC_CLASS",
	"TC_BLOCKDATA",
	"TC_ENDBLOCKDATA",
	"TC_RESET",
	"TC_BLOCKDATALONG",
	"TC_EXCEPTION",
	"TC_LONGSTRING",
	"TC_PROXYCLASSDESC",
	"TC_ENUM",
}

func markerFrom(b byte) (Marker, error) {
	if b < TcNull || b > TcEnum {
		return 0, &StreamError{Kind: KindUnknownMark, Mark: b}
	}
	return Marker(b), nil
}

func (m Marker) String() string {
	if byte(m) < TcNull || byte(m) > TcEnum {
		return "TC_UNKNOWN"
	}
	return markerNames[byte(m)-TcNull]
}
