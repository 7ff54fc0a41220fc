package domain

// ValidationCode identifies a structural finding. Codes are stable strings
// so hosts can branch on them without parsing messages.
type ValidationCode string

// Error codes: structural problems that make derived figures unreliable.
const (
	CodeDocumentNameEmpty        ValidationCode = "DOCUMENT_NAME_EMPTY"
	CodeWallCoordsInvalid        ValidationCode = "WALL_COORDS_INVALID"
	CodeWallTooShort             ValidationCode = "WALL_TOO_SHORT"
	CodeRoomNameEmpty            ValidationCode = "ROOM_NAME_EMPTY"
	CodeRoomNoWalls              ValidationCode = "ROOM_NO_WALLS"
	CodeRoomInsufficientWalls    ValidationCode = "ROOM_INSUFFICIENT_WALLS"
	CodeRoomWallNotFound         ValidationCode = "ROOM_WALL_NOT_FOUND"
	CodeFixturePositionRange     ValidationCode = "FIXTURE_POSITION_RANGE"
	CodeFixtureDimensionsInvalid ValidationCode = "FIXTURE_DIMENSIONS_INVALID"
)

// Warning codes: suspicious values worth a look but not fatal.
const (
	CodeWallThicknessRange  ValidationCode = "WALL_THICKNESS_RANGE"
	CodeWallHeightRange     ValidationCode = "WALL_HEIGHT_RANGE"
	CodeCeilingHeightRange  ValidationCode = "CEILING_HEIGHT_RANGE"
	CodeRoomAreaNotPositive ValidationCode = "ROOM_AREA_NOT_POSITIVE"
	CodeWallDisconnected    ValidationCode = "WALL_DISCONNECTED"
)

// ElementType names the kind of element a finding is attached to.
type ElementType string

const (
	ElementDocument ElementType = "document"
	ElementWall     ElementType = "wall"
	ElementRoom     ElementType = "room"
	ElementFixture  ElementType = "fixture"
)

// Plausibility limits used by the validator.
const (
	// MinWallLengthInches is the shortest wall treated as real geometry.
	MinWallLengthInches = 1.0

	// MaxWallThicknessInches is the upper bound of a plausible thickness.
	MaxWallThicknessInches = 24.0

	// MaxWallHeightFeet is the upper bound of a plausible wall height.
	MaxWallHeightFeet = 20.0

	// MaxCeilingHeightFeet is the upper bound of a plausible ceiling
	// height.
	MaxCeilingHeightFeet = 20.0
)

// ValidationIssue is a single finding against a document element.
type ValidationIssue struct {
	// Code is the stable identifier for the finding.
	Code ValidationCode `json:"code"`

	// Message is the human-readable explanation.
	Message string `json:"message"`

	// ElementID identifies the offending element, empty for
	// document-level findings.
	ElementID string `json:"elementId,omitempty"`

	// ElementType names the kind of element the finding is about.
	ElementType ElementType `json:"elementType"`
}

// ValidationResult is the outcome of a structural check. Warnings never
// affect validity.
type ValidationResult struct {
	// IsValid is true when no errors were found.
	IsValid bool `json:"isValid"`

	// Errors lists structural problems.
	Errors []ValidationIssue `json:"errors"`

	// Warnings lists suspicious but non-fatal findings.
	Warnings []ValidationIssue `json:"warnings"`
}

// AddError appends an error finding and flips IsValid.
func (r *ValidationResult) AddError(issue ValidationIssue) {
	r.Errors = append(r.Errors, issue)
	r.IsValid = false
}

// AddWarning appends a warning finding.
func (r *ValidationResult) AddWarning(issue ValidationIssue) {
	r.Warnings = append(r.Warnings, issue)
}

// HasWarnings reports whether any warnings were recorded.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}
