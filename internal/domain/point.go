package domain

// A single layer of a 1D depth-velocity profile. Read-only once loaded;
// the query layer builds these per request and discards them afterwards.
type ProfilePoint struct {
	Depth    float64 // km, may be negative above the reference datum
	Velocity float64 // km/s
	Wave     WaveType
	NFO      string // network/organization identifier of the dataset
	Author   string
}

// A single node of a 3D gridded velocity volume.
// R is the optional per-point scale factor; nil means the value was absent
// at import time and stands for the default 1.0.
type GridPoint struct {
	Longitude float64 // degrees
	Latitude  float64 // degrees
	Depth     float64 // km
	Velocity  float64 // km/s
	R         *float64
	NFO       string
	Author    string
}
