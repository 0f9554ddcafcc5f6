package fitness

// The enumerations below are stored as their variant names. Valid reports
// whether a value is one of the declared variants.

// PushOrPull classifies an exercise by the direction of force.
type PushOrPull string

const (
	Push PushOrPull = "Push"
	Pull PushOrPull = "Pull"
)

func (v PushOrPull) Valid() bool    { return v == Push || v == Pull }
func (v PushOrPull) String() string { return string(v) }

// DynamicOrStatic separates moving exercises from held positions.
type DynamicOrStatic string

const (
	Dynamic DynamicOrStatic = "Dynamic"
	Static  DynamicOrStatic = "Static"
)

func (v DynamicOrStatic) Valid() bool    { return v == Dynamic || v == Static }
func (v DynamicOrStatic) String() string { return string(v) }

// StraightOrBentArm records whether the arms stay locked during the exercise.
type StraightOrBentArm string

const (
	Straight StraightOrBentArm = "Straight"
	Bent     StraightOrBentArm = "Bent"
)

func (v StraightOrBentArm) Valid() bool    { return v == Straight || v == Bent }
func (v StraightOrBentArm) String() string { return string(v) }

// SquatOrHinge is the lower-body movement pattern.
type SquatOrHinge string

const (
	Squat SquatOrHinge = "Squat"
	Hinge SquatOrHinge = "Hinge"
)

func (v SquatOrHinge) Valid() bool    { return v == Squat || v == Hinge }
func (v SquatOrHinge) String() string { return string(v) }

// UpperOrLower is the body half an exercise trains.
type UpperOrLower string

const (
	Upper UpperOrLower = "Upper"
	Lower UpperOrLower = "Lower"
)

func (v UpperOrLower) Valid() bool    { return v == Upper || v == Lower }
func (v UpperOrLower) String() string { return string(v) }

// CompoundOrIsolation separates multi-joint from single-joint exercises.
type CompoundOrIsolation string

const (
	Compound  CompoundOrIsolation = "Compound"
	Isolation CompoundOrIsolation = "Isolation"
)

func (v CompoundOrIsolation) Valid() bool    { return v == Compound || v == Isolation }
func (v CompoundOrIsolation) String() string { return string(v) }

// LeverVariation is the progression step of a lever exercise.
type LeverVariation string

const (
	Tuck         LeverVariation = "Tuck"
	AdvancedTuck LeverVariation = "AdvancedTuck"
	Straddle     LeverVariation = "Straddle"
	OneLeg       LeverVariation = "OneLeg"
	HalfLay      LeverVariation = "HalfLay"
	Full         LeverVariation = "Full"
)

func (v LeverVariation) Valid() bool {
	switch v {
	case Tuck, AdvancedTuck, Straddle, OneLeg, HalfLay, Full:
		return true
	}
	return false
}

func (v LeverVariation) String() string { return string(v) }

// Grip is the hand orientation on the bar, rings or floor.
type Grip string

const (
	Pronated       Grip = "Pronated"
	Supinated      Grip = "Supinated"
	Neutral        Grip = "Neutral"
	GymnasticsRing Grip = "GymnasticsRing"
	Floor          Grip = "Floor"
)

func (v Grip) Valid() bool {
	switch v {
	case Pronated, Supinated, Neutral, GymnasticsRing, Floor:
		return true
	}
	return false
}

func (v Grip) String() string { return string(v) }

// GripWidth is the hand spacing relative to the shoulders.
type GripWidth string

const (
	Wide     GripWidth = "Wide"
	Shoulder GripWidth = "Shoulder"
	Narrow   GripWidth = "Narrow"
)

func (v GripWidth) Valid() bool    { return v == Wide || v == Shoulder || v == Narrow }
func (v GripWidth) String() string { return string(v) }
