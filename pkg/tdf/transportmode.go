package tdf

type TransportMode string

//goland:noinspection GoUnusedConst
const (
	TransportModeTrain     TransportMode = "Train"
	TransportModeMetro                   = "Metro"
	TransportModeLightRail               = "LightRail"
	TransportModeHighSpeed               = "HighSpeed"
	TransportModeBoat                    = "Boat"
	TransportModeCableCar                = "CableCar"
	TransportModeAirplane                = "Airplane"
	TransportModeUnknown                 = "UNKNOWN"
)
