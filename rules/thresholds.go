// SPDX-License-Identifier: MIT

package rules

// Fixed thresholds of the building-code and quality rules. Units are
// meters, square meters or plain ratios; whichever threshold a finding
// broke is carried in its Limit field.
const (
	// MinCorridorWidth is the narrowest legal corridor (m), measured as
	// the short side of the bounding rectangle.
	MinCorridorWidth = 1.20

	// MinCeilingHeight is the lowest legal wall height on a floor with
	// habitable rooms (m).
	MinCeilingHeight = 2.50

	// MaxEscapeDistance caps the weighted escape path from any room to
	// the outside node (m). Elevators never count as escape routes.
	MaxEscapeDistance = 35.0

	// Door width bounds by role (m). DoorTolerance absorbs authoring
	// noise: an 0.899 m apartment door does not flag against 0.90.
	MinEntranceDoorWidth  = 1.00
	MinApartmentDoorWidth = 0.90
	MinInteriorDoorWidth  = 0.80
	MaxDoorWidth          = 1.20
	DoorTolerance         = 0.01

	// MaxAspectRatio is the bounding-rect proportion past which a room
	// counts as tunnel-shaped.
	MaxAspectRatio = 1.5

	// Bedroom minima (m²). The first-listed bedroom of an apartment is
	// the master.
	MinMasterBedroomArea = 12.0
	MinBedroomArea       = 10.0

	// Per-type room minima (m²); bedrooms have their own pair above.
	MinLivingArea   = 14.0
	MinKitchenArea  = 6.0
	MinBathroomArea = 4.0
	MinWCArea       = 1.5
	MinHallArea     = 3.0
	MinStorageArea  = 1.0

	// MinSellableRatio is the lowest acceptable net-to-gross share per
	// floor.
	MinSellableRatio = 0.65

	// MaxHallShare caps the entrance hall at a share of its apartment's
	// net area.
	MaxHallShare = 0.10

	// MinShapeFill is the lowest room-area to bounding-rect-area share
	// before the room counts as irregular.
	MinShapeFill = 0.95

	// BearingAlignTol is the endpoint slack when matching a bearing
	// wall against the storey below (m).
	BearingAlignTol = 0.1

	// OpeningOverlapTol is the longest tolerated overlap between two
	// opening intervals on one wall (m).
	OpeningOverlapTol = 0.01

	// CoverageCell is the sampling pitch of the floor-coverage flood
	// fill (m); uncovered clusters below MinUnassignedArea (m²) stay
	// quiet.
	CoverageCell      = 0.5
	MinUnassignedArea = 1.0
)
