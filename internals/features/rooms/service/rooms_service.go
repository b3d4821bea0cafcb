package service

import (
	"context"
	"fmt"

	"coachingku_backend/internals/charts"
	"coachingku_backend/internals/page"
	"coachingku_backend/internals/store"
	"coachingku_backend/internals/tabular"
)

const ChartRoomLoad = "room_load"

type RoomService struct {
	st *store.Store
}

func NewRoomService(st *store.Store) *RoomService {
	return &RoomService{st: st}
}

func (s *RoomService) Key() string   { return "rooms" }
func (s *RoomService) Title() string { return "Rooms Utilization" }

func (s *RoomService) Build(ctx context.Context, params page.Params) *page.Page {
	p := page.New(s.Key(), "Room / Class Utilization")

	cs, err := s.st.Table(ctx, "class_schedule")
	switch {
	case err != nil:
		p.Add(page.Error("Error loading class_schedule", err))
	case cs.Empty():
		p.Add(page.Info("No class schedule data available for rooms."))
	case !cs.HasColumn("room_id"):
		p.Add(page.Info("ROOM_ID column not found in class_schedule."))
	default:
		var f page.Filter
		cs, f, _ = page.Select(cs, params, "room_id", "room_id", "Filter by room ID")
		p.AddFilter(f)
		p.Add(page.TableSection("Room-wise Schedule", fmt.Sprintf("Total scheduled classes: %d", cs.Len()), cs))
		groups := cs.GroupBy("room_id", "", tabular.Count)
		c := charts.FromGroups(ChartRoomLoad, "Room-wise Class Count", charts.Bar, "class_count", groups)
		p.Add(page.ChartOrInfo(c, "No classes to chart."))
	}

	// the room master is optional; a missing table is not an error here
	if rooms, err := s.st.Table(ctx, "room"); err == nil && !rooms.Empty() {
		p.Add(page.TableSection("Room Master Table", "", rooms))
	}
	return p
}
