package export

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// MarshalJSON encodes s as a JSON object through a protobuf Struct.
func MarshalJSON(s *Snapshot) ([]byte, error) {
	st, err := structpb.NewStruct(toMap(s))
	if err != nil {
		return nil, fmt.Errorf("build snapshot struct: %w", err)
	}
	data, err := (&protojson.MarshalOptions{Multiline: true, Indent: "  "}).Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// UnmarshalJSON decodes what MarshalJSON produced. Missing fields read as
// zero values.
func UnmarshalJSON(data []byte) (*Snapshot, error) {
	var st structpb.Struct
	if err := protojson.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return fromStruct(&st), nil
}

func toMap(s *Snapshot) map[string]interface{} {
	vertices := make([]interface{}, 0, len(s.Graph.Vertices))
	for _, v := range s.Graph.Vertices {
		vertices = append(vertices, map[string]interface{}{
			"id":       v.ID,
			"x":        v.X,
			"y":        v.Y,
			"owner":    v.Owner,
			"building": v.Building,
		})
	}
	edges := make([]interface{}, 0, len(s.Graph.Edges))
	for _, e := range s.Graph.Edges {
		edges = append(edges, map[string]interface{}{
			"a":     e.A,
			"b":     e.B,
			"owner": e.Owner,
		})
	}
	players := make([]interface{}, 0, len(s.Players))
	for _, p := range s.Players {
		resources := make(map[string]interface{}, len(p.Resources))
		for k, n := range p.Resources {
			resources[k] = n
		}
		players = append(players, map[string]interface{}{
			"id":            p.ID,
			"color":         p.Color,
			"resources":     resources,
			"victoryPoints": p.VictoryPoints,
			"longestRoad":   p.LongestRoad,
			"roadLength":    p.RoadLength,
		})
	}
	hexes := make([]interface{}, 0, len(s.Hexes))
	for _, h := range s.Hexes {
		corners := make([]interface{}, 0, len(h.Vertices))
		for _, v := range h.Vertices {
			corners = append(corners, v)
		}
		hexes = append(hexes, map[string]interface{}{
			"id":       h.ID,
			"x":        h.X,
			"y":        h.Y,
			"kind":     h.Kind,
			"token":    h.Token,
			"vertices": corners,
		})
	}

	return map[string]interface{}{
		"graph": map[string]interface{}{
			"vertices": vertices,
			"edges":    edges,
		},
		"players":       players,
		"currentPlayer": s.CurrentPlayer,
		"hexes":         hexes,
		"phase":         s.Phase,
		"stage":         s.Stage,
		"lastRoll":      s.LastRoll,
		"robber":        s.Robber,
	}
}

func num(fields map[string]*structpb.Value, key string) int {
	return int(fields[key].GetNumberValue())
}

func fromStruct(st *structpb.Struct) *Snapshot {
	f := st.GetFields()
	s := &Snapshot{
		CurrentPlayer: num(f, "currentPlayer"),
		Phase:         f["phase"].GetStringValue(),
		Stage:         f["stage"].GetStringValue(),
		LastRoll:      num(f, "lastRoll"),
		Robber:        num(f, "robber"),
	}

	graph := f["graph"].GetStructValue().GetFields()
	for _, item := range graph["vertices"].GetListValue().GetValues() {
		v := item.GetStructValue().GetFields()
		s.Graph.Vertices = append(s.Graph.Vertices, Vertex{
			ID:       num(v, "id"),
			X:        num(v, "x"),
			Y:        num(v, "y"),
			Owner:    num(v, "owner"),
			Building: v["building"].GetStringValue(),
		})
	}
	for _, item := range graph["edges"].GetListValue().GetValues() {
		e := item.GetStructValue().GetFields()
		s.Graph.Edges = append(s.Graph.Edges, Edge{
			A:     num(e, "a"),
			B:     num(e, "b"),
			Owner: num(e, "owner"),
		})
	}
	for _, item := range f["players"].GetListValue().GetValues() {
		p := item.GetStructValue().GetFields()
		resources := map[string]int{}
		for k, n := range p["resources"].GetStructValue().GetFields() {
			resources[k] = int(n.GetNumberValue())
		}
		s.Players = append(s.Players, Player{
			ID:            num(p, "id"),
			Color:         p["color"].GetStringValue(),
			Resources:     resources,
			VictoryPoints: num(p, "victoryPoints"),
			LongestRoad:   p["longestRoad"].GetBoolValue(),
			RoadLength:    num(p, "roadLength"),
		})
	}
	for _, item := range f["hexes"].GetListValue().GetValues() {
		h := item.GetStructValue().GetFields()
		hex := Hex{
			ID:    num(h, "id"),
			X:     num(h, "x"),
			Y:     num(h, "y"),
			Kind:  h["kind"].GetStringValue(),
			Token: num(h, "token"),
		}
		for _, v := range h["vertices"].GetListValue().GetValues() {
			hex.Vertices = append(hex.Vertices, int(v.GetNumberValue()))
		}
		s.Hexes = append(s.Hexes, hex)
	}
	return s
}
