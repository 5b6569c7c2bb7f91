package storage

import "time"

// Room is a single drawn area on a floor plan. Rooms without a team name are
// unassigned.
type Room struct {
	ID          string  `dynamodbav:"PK" json:"id"`
	Name        string  `dynamodbav:"Name" json:"name"`
	TeamName    string  `dynamodbav:"TeamName,omitempty" json:"teamName,omitempty"`
	TeamNumber  string  `dynamodbav:"TeamNumber,omitempty" json:"teamNumber,omitempty"`
	ProjectName string  `dynamodbav:"ProjectName,omitempty" json:"projectName,omitempty"`
	FloorID     string  `dynamodbav:"FloorID" json:"floorId"`
	X           float64 `dynamodbav:"X" json:"x"`
	Y           float64 `dynamodbav:"Y" json:"y"`
	Width       float64 `dynamodbav:"Width" json:"width"`
	Height      float64 `dynamodbav:"Height" json:"height"`
	Notes       string  `dynamodbav:"Notes,omitempty" json:"notes,omitempty"`
	Track       string  `dynamodbav:"Track,omitempty" json:"track,omitempty"`
	AddOnTrack  string  `dynamodbav:"AddOnTrack,omitempty" json:"addOnTrack,omitempty"`
}

// Entry is one opaque value in the key-value store. Version starts at 1 on
// the first write and grows by one on every replace.
type Entry struct {
	Key       string    `dynamodbav:"PK"`
	Value     []byte    `dynamodbav:"Value"`
	Version   int64     `dynamodbav:"Version"`
	UpdatedAt time.Time `dynamodbav:"UpdatedAt"`
}
