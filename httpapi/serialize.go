package httpapi

import "dogworld/model"

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
	ID      model.OfficeID `json:"id"`
	X       int            `json:"x"`
	Y       int            `json:"y"`
	OffsetX int            `json:"offsetX"`
	OffsetY int            `json:"offsetY"`
}

type mapSummaryJSON struct {
	ID   model.MapID `json:"id"`
	Name string      `json:"name"`
}

type mapDetailJSON struct {
	ID        model.MapID    `json:"id"`
	Name      string         `json:"name"`
	DogSpeed  *float64       `json:"dogSpeed,omitempty"`
	Roads     []roadJSON     `json:"roads"`
	Buildings []buildingJSON `json:"buildings"`
	Offices   []officeJSON   `json:"offices"`
}

func roadToJSON(r model.Road) roadJSON {
	start := r.Start()
	end := r.End()
	j := roadJSON{X0: start.X, Y0: start.Y}
	if r.IsHorizontal() {
		x1 := end.X
		j.X1 = &x1
	} else {
		y1 := end.Y
		j.Y1 = &y1
	}
	return j
}

func buildingToJSON(b model.Building) buildingJSON {
	bounds := b.Bounds()
	return buildingJSON{X: bounds.Position.X, Y: bounds.Position.Y, W: bounds.Size.Width, H: bounds.Size.Height}
}

func officeToJSON(o model.Office) officeJSON {
	return officeJSON{
		ID:      o.ID(),
		X:       o.Position().X,
		Y:       o.Position().Y,
		OffsetX: o.Offset().DX,
		OffsetY: o.Offset().DY,
	}
}

func mapToSummaryJSON(m *model.Map) mapSummaryJSON {
	return mapSummaryJSON{ID: m.ID(), Name: m.Name()}
}

func mapToDetailJSON(m *model.Map) mapDetailJSON {
	detail := mapDetailJSON{
		ID:        m.ID(),
		Name:      m.Name(),
		Roads:     make([]roadJSON, len(m.Roads())),
		Buildings: make([]buildingJSON, len(m.Buildings())),
		Offices:   make([]officeJSON, len(m.Offices())),
	}
	if speed, ok := m.DogSpeed(); ok {
		detail.DogSpeed = &speed
	}
	for i, r := range m.Roads() {
		detail.Roads[i] = roadToJSON(r)
	}
	for i, b := range m.Buildings() {
		detail.Buildings[i] = buildingToJSON(b)
	}
	for i, o := range m.Offices() {
		detail.Offices[i] = officeToJSON(o)
	}
	return detail
}

type dogJSON struct {
	Pos   [2]float64      `json:"pos"`
	Speed [2]float64      `json:"speed"`
	Dir   model.Direction `json:"dir"`
}

func dogToJSON(d *model.Dog) dogJSON {
	pos := d.Position()
	speed := d.Speed()
	return dogJSON{
		Pos:   [2]float64{pos.X, pos.Y},
		Speed: [2]float64{speed.U, speed.V},
		Dir:   d.Direction(),
	}
}

type dogNameJSON struct {
	Name string `json:"name"`
}
