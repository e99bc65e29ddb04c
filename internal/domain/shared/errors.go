package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Energy cell errors

type CellError struct {
	*DomainError
	Index int
}

func NewCellError(message string, index int) *CellError {
	return &CellError{DomainError: &DomainError{Message: message}, Index: index}
}

// CellNotChargedError is returned when a charge is consumed from an empty cell
type CellNotChargedError struct {
	*CellError
}

func NewCellNotChargedError(index int) *CellNotChargedError {
	msg := "energy cell is not charged"
	if index >= 0 {
		msg = fmt.Sprintf("energy cell %d is not charged", index)
	}
	return &CellNotChargedError{CellError: NewCellError(msg, index)}
}

// CellIndexError is returned when a cell index falls outside the reserve
type CellIndexError struct {
	*CellError
	Size int
}

func NewCellIndexError(index, size int) *CellIndexError {
	return &CellIndexError{
		CellError: NewCellError(fmt.Sprintf("energy cell index %d out of range [0,%d)", index, size), index),
		Size:      size,
	}
}

// NoUnchargedCellError signals a saturated reserve
type NoUnchargedCellError struct {
	*DomainError
}

func NewNoUnchargedCellError() *NoUnchargedCellError {
	return &NoUnchargedCellError{DomainError: NewDomainError("no uncharged energy cell available")}
}

// NoChargedCellError signals that no charge is available to build or synthesize with
type NoChargedCellError struct {
	*DomainError
}

func NewNoChargedCellError() *NoChargedCellError {
	return &NoChargedCellError{DomainError: NewDomainError("no charged energy cell available")}
}

// Rocket errors

type RocketError struct {
	*DomainError
	PlanetID PlanetID
}

func NewRocketError(message string, planetID PlanetID) *RocketError {
	return &RocketError{DomainError: &DomainError{Message: message}, PlanetID: planetID}
}

type RocketAlreadyPresentError struct {
	*RocketError
}

func NewRocketAlreadyPresentError(planetID PlanetID) *RocketAlreadyPresentError {
	return &RocketAlreadyPresentError{
		RocketError: NewRocketError(fmt.Sprintf("planet %s already holds a rocket", planetID), planetID),
	}
}

type RocketNotSupportedError struct {
	*RocketError
}

func NewRocketNotSupportedError(planetID PlanetID) *RocketNotSupportedError {
	return &RocketNotSupportedError{
		RocketError: NewRocketError(fmt.Sprintf("planet %s cannot build rockets", planetID), planetID),
	}
}

// Recipe errors

type UnsupportedRecipeError struct {
	*DomainError
	Recipe string
}

func NewUnsupportedRecipeError(recipe string) *UnsupportedRecipeError {
	return &UnsupportedRecipeError{
		DomainError: NewDomainError(fmt.Sprintf("recipe %s is not supported", recipe)),
		Recipe:      recipe,
	}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
