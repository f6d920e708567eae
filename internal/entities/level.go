package entities

import "errors"

type CareerLevel string

const (
	LevelEntry  CareerLevel = "entry"
	LevelMid    CareerLevel = "mid"
	LevelSenior CareerLevel = "senior"
)

func ToCareerLevel(s string) (CareerLevel, error) {
	switch s {
	case string(LevelEntry):
		return LevelEntry, nil
	case string(LevelMid):
		return LevelMid, nil
	case string(LevelSenior):
		return LevelSenior, nil
	default:
		return "", errors.New("invalid career level")
	}
}
