package models

import (
	"github.com/frontiertower/floorfinder-sub000/storage"
)

type RoomCreateRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" binding:"required"`
	TeamName    string  `json:"teamName"`
	TeamNumber  string  `json:"teamNumber"`
	ProjectName string  `json:"projectName"`
	FloorID     string  `json:"floorId" binding:"required"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width" binding:"gte=0"`
	Height      float64 `json:"height" binding:"gte=0"`
	Notes       string  `json:"notes"`
	Track       string  `json:"track"`
	AddOnTrack  string  `json:"addOnTrack"`
}

type RoomUpdateRequest struct {
	Name        string  `json:"name" binding:"required"`
	TeamName    string  `json:"teamName"`
	TeamNumber  string  `json:"teamNumber"`
	ProjectName string  `json:"projectName"`
	FloorID     string  `json:"floorId" binding:"required"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width" binding:"gte=0"`
	Height      float64 `json:"height" binding:"gte=0"`
	Notes       string  `json:"notes"`
	Track       string  `json:"track"`
	AddOnTrack  string  `json:"addOnTrack"`
}

type RoomResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	TeamName    string  `json:"teamName,omitempty"`
	TeamNumber  string  `json:"teamNumber,omitempty"`
	ProjectName string  `json:"projectName,omitempty"`
	FloorID     string  `json:"floorId"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Notes       string  `json:"notes,omitempty"`
	Track       string  `json:"track,omitempty"`
	AddOnTrack  string  `json:"addOnTrack,omitempty"`
}

func (r RoomCreateRequest) ToStorage(id string) *storage.Room {
	return &storage.Room{
		ID:          id,
		Name:        r.Name,
		TeamName:    r.TeamName,
		TeamNumber:  r.TeamNumber,
		ProjectName: r.ProjectName,
		FloorID:     r.FloorID,
		X:           r.X,
		Y:           r.Y,
		Width:       r.Width,
		Height:      r.Height,
		Notes:       r.Notes,
		Track:       r.Track,
		AddOnTrack:  r.AddOnTrack,
	}
}

func (r RoomUpdateRequest) ToStorage(id string) *storage.Room {
	return RoomCreateRequest{
		Name:        r.Name,
		TeamName:    r.TeamName,
		TeamNumber:  r.TeamNumber,
		ProjectName: r.ProjectName,
		FloorID:     r.FloorID,
		X:           r.X,
		Y:           r.Y,
		Width:       r.Width,
		Height:      r.Height,
		Notes:       r.Notes,
		Track:       r.Track,
		AddOnTrack:  r.AddOnTrack,
	}.ToStorage(id)
}

func TransformRoomFromStorage(r *storage.Room) RoomResponse {
	return RoomResponse{
		ID:          r.ID,
		Name:        r.Name,
		TeamName:    r.TeamName,
		TeamNumber:  r.TeamNumber,
		ProjectName: r.ProjectName,
		FloorID:     r.FloorID,
		X:           r.X,
		Y:           r.Y,
		Width:       r.Width,
		Height:      r.Height,
		Notes:       r.Notes,
		Track:       r.Track,
		AddOnTrack:  r.AddOnTrack,
	}
}
