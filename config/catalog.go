package config

import (
	"encoding/json"
	"fmt"
	"os"

	"dogworld/model"
)

// roadJSON mirrors one entry of a map's "roads" array. A road with x1
// set is horizontal; one with y1 set is vertical - exactly one of the
// two is ever present, the same disambiguation json_loader.cpp's
// LoadRoad uses.
type roadJSON struct {
	X0 int  `json:"x0"`
	Y0 int  `json:"y0"`
	X1 *int `json:"x1,omitempty"`
	Y1 *int `json:"y1,omitempty"`
}

type buildingJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type officeJSON struct {
	ID      string `json:"id"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	OffsetX int    `json:"offsetX"`
	OffsetY int    `json:"offsetY"`
}

type mapJSON struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	DogSpeed  *float64       `json:"dogSpeed,omitempty"`
	Roads     []roadJSON     `json:"roads"`
	Buildings []buildingJSON `json:"buildings"`
	Offices   []officeJSON   `json:"offices"`
}

type gameJSON struct {
	DefaultDogSpeed *float64  `json:"defaultDogSpeed,omitempty"`
	Maps            []mapJSON `json:"maps"`
}

func loadRoad(r roadJSON) (model.Road, error) {
	start := model.Point{X: r.X0, Y: r.Y0}
	switch {
	case r.X1 != nil:
		return model.NewHorizontalRoad(start, *r.X1), nil
	case r.Y1 != nil:
		return model.NewVerticalRoad(start, *r.Y1), nil
	default:
		return model.Road{}, fmt.Errorf("config: road at (%d,%d) has neither x1 nor y1", r.X0, r.Y0)
	}
}

func loadBuilding(b buildingJSON) model.Building {
	return model.NewBuilding(model.Rectangle{
		Position: model.Point{X: b.X, Y: b.Y},
		Size:     model.Size{Width: b.W, Height: b.H},
	})
}

func loadOffice(o officeJSON) model.Office {
	return model.NewOffice(
		model.OfficeID(o.ID),
		model.Point{X: o.X, Y: o.Y},
		model.Offset{DX: o.OffsetX, DY: o.OffsetY},
	)
}

func loadMap(mj mapJSON) (*model.Map, error) {
	m := model.NewMap(model.MapID(mj.ID), mj.Name)
	if mj.DogSpeed != nil {
		m.SetDogSpeed(*mj.DogSpeed)
	}

	for _, rj := range mj.Roads {
		road, err := loadRoad(rj)
		if err != nil {
			return nil, err
		}
		m.AddRoad(road)
	}

	for _, bj := range mj.Buildings {
		m.AddBuilding(loadBuilding(bj))
	}

	for _, oj := range mj.Offices {
		if err := m.AddOffice(loadOffice(oj)); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// LoadGame reads path, a catalog of maps in the same JSON shape
// json_loader.cpp parses, and builds a populated *model.Game from it.
func LoadGame(path string) (*model.Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to open %s: %w", path, err)
	}

	var gj gameJSON
	if err := json.Unmarshal(data, &gj); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	game := model.NewGame()
	if gj.DefaultDogSpeed != nil {
		game.SetDefaultDogSpeed(*gj.DefaultDogSpeed)
	}

	for _, mj := range gj.Maps {
		m, err := loadMap(mj)
		if err != nil {
			return nil, err
		}
		if err := game.AddMap(m); err != nil {
			return nil, err
		}
	}

	return game, nil
}
