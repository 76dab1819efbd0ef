package export

import (
	"errors"
	"fmt"

	"catan/game"

	flatbuffers "github.com/google/flatbuffers/go"
)

var ErrMalformed = errors.New("malformed snapshot")

// Field slots of the tables in snapshot.fbs.
const (
	snapshotVertices = iota
	snapshotEdges
	snapshotPlayers
	snapshotHexes
	snapshotCurrentPlayer
	snapshotPhase
	snapshotStage
	snapshotLastRoll
	snapshotRobber
	snapshotFields
)

const (
	vertexID = iota
	vertexX
	vertexY
	vertexOwner
	vertexBuilding
	vertexFields
)

const (
	edgeA = iota
	edgeB
	edgeOwner
	edgeFields
)

const (
	playerID = iota
	playerColor
	playerResources
	playerVictoryPoints
	playerLongestRoad
	playerRoadLength
	playerFields
)

const (
	hexID = iota
	hexX
	hexY
	hexKind
	hexToken
	hexVertices
	hexFields
)

// MarshalBinary encodes s as a flatbuffer with the layout of snapshot.fbs.
func MarshalBinary(s *Snapshot) []byte {
	b := flatbuffers.NewBuilder(8192)

	vertices := make([]flatbuffers.UOffsetT, len(s.Graph.Vertices))
	for i, v := range s.Graph.Vertices {
		building := b.CreateString(v.Building)
		b.StartObject(vertexFields)
		b.PrependInt32Slot(vertexID, int32(v.ID), 0)
		b.PrependInt32Slot(vertexX, int32(v.X), 0)
		b.PrependInt32Slot(vertexY, int32(v.Y), 0)
		b.PrependInt32Slot(vertexOwner, int32(v.Owner), 0)
		b.PrependUOffsetTSlot(vertexBuilding, building, 0)
		vertices[i] = b.EndObject()
	}

	edges := make([]flatbuffers.UOffsetT, len(s.Graph.Edges))
	for i, e := range s.Graph.Edges {
		b.StartObject(edgeFields)
		b.PrependInt32Slot(edgeA, int32(e.A), 0)
		b.PrependInt32Slot(edgeB, int32(e.B), 0)
		b.PrependInt32Slot(edgeOwner, int32(e.Owner), 0)
		edges[i] = b.EndObject()
	}

	players := make([]flatbuffers.UOffsetT, len(s.Players))
	for i, p := range s.Players {
		color := b.CreateString(p.Color)
		counts := make([]int, game.NumResources)
		for r := range counts {
			counts[r] = p.Resources[game.Resource(r).String()]
		}
		resources := int32Vector(b, counts)
		b.StartObject(playerFields)
		b.PrependInt32Slot(playerID, int32(p.ID), 0)
		b.PrependUOffsetTSlot(playerColor, color, 0)
		b.PrependUOffsetTSlot(playerResources, resources, 0)
		b.PrependInt32Slot(playerVictoryPoints, int32(p.VictoryPoints), 0)
		b.PrependBoolSlot(playerLongestRoad, p.LongestRoad, false)
		b.PrependInt32Slot(playerRoadLength, int32(p.RoadLength), 0)
		players[i] = b.EndObject()
	}

	hexes := make([]flatbuffers.UOffsetT, len(s.Hexes))
	for i, h := range s.Hexes {
		kind := b.CreateString(h.Kind)
		corners := int32Vector(b, h.Vertices)
		b.StartObject(hexFields)
		b.PrependInt32Slot(hexID, int32(h.ID), 0)
		b.PrependInt32Slot(hexX, int32(h.X), 0)
		b.PrependInt32Slot(hexY, int32(h.Y), 0)
		b.PrependUOffsetTSlot(hexKind, kind, 0)
		b.PrependInt32Slot(hexToken, int32(h.Token), 0)
		b.PrependUOffsetTSlot(hexVertices, corners, 0)
		hexes[i] = b.EndObject()
	}

	vertexVec := offsetVector(b, vertices)
	edgeVec := offsetVector(b, edges)
	playerVec := offsetVector(b, players)
	hexVec := offsetVector(b, hexes)
	phase := b.CreateString(s.Phase)
	stage := b.CreateString(s.Stage)

	b.StartObject(snapshotFields)
	b.PrependUOffsetTSlot(snapshotVertices, vertexVec, 0)
	b.PrependUOffsetTSlot(snapshotEdges, edgeVec, 0)
	b.PrependUOffsetTSlot(snapshotPlayers, playerVec, 0)
	b.PrependUOffsetTSlot(snapshotHexes, hexVec, 0)
	b.PrependInt32Slot(snapshotCurrentPlayer, int32(s.CurrentPlayer), 0)
	b.PrependUOffsetTSlot(snapshotPhase, phase, 0)
	b.PrependUOffsetTSlot(snapshotStage, stage, 0)
	b.PrependInt32Slot(snapshotLastRoll, int32(s.LastRoll), 0)
	b.PrependInt32Slot(snapshotRobber, int32(s.Robber), 0)
	b.Finish(b.EndObject())
	return b.FinishedBytes()
}

func offsetVector(b *flatbuffers.Builder, offsets []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	b.StartVector(flatbuffers.SizeUOffsetT, len(offsets), flatbuffers.SizeUOffsetT)
	for i := len(offsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offsets[i])
	}
	return b.EndVector(len(offsets))
}

func int32Vector(b *flatbuffers.Builder, values []int) flatbuffers.UOffsetT {
	b.StartVector(flatbuffers.SizeInt32, len(values), flatbuffers.SizeInt32)
	for i := len(values) - 1; i >= 0; i-- {
		b.PrependInt32(int32(values[i]))
	}
	return b.EndVector(len(values))
}

// table reads fields by slot, the way generated accessors do.
type table struct {
	flatbuffers.Table
}

func (t table) field(slot int) flatbuffers.UOffsetT {
	return flatbuffers.UOffsetT(t.Offset(flatbuffers.VOffsetT(4 + 2*slot)))
}

func (t table) getInt(slot int) int {
	if o := t.field(slot); o != 0 {
		return int(t.GetInt32(o + t.Pos))
	}
	return 0
}

func (t table) getBool(slot int) bool {
	if o := t.field(slot); o != 0 {
		return t.GetBool(o + t.Pos)
	}
	return false
}

func (t table) getString(slot int) string {
	if o := t.field(slot); o != 0 {
		return t.String(o + t.Pos)
	}
	return ""
}

func (t table) getTables(slot int) []table {
	o := t.field(slot)
	if o == 0 {
		return nil
	}
	n := t.VectorLen(o)
	start := t.Vector(o)
	out := make([]table, n)
	for j := range out {
		pos := t.Indirect(start + flatbuffers.UOffsetT(j*flatbuffers.SizeUOffsetT))
		out[j] = table{flatbuffers.Table{Bytes: t.Bytes, Pos: pos}}
	}
	return out
}

func (t table) getInts(slot int) []int {
	o := t.field(slot)
	if o == 0 {
		return nil
	}
	n := t.VectorLen(o)
	start := t.Vector(o)
	out := make([]int, n)
	for j := range out {
		out[j] = int(t.GetInt32(start + flatbuffers.UOffsetT(j*flatbuffers.SizeInt32)))
	}
	return out
}

// UnmarshalBinary decodes what MarshalBinary produced. Truncated or corrupt
// input returns ErrMalformed.
func UnmarshalBinary(buf []byte) (s *Snapshot, err error) {
	if len(buf) < 2*flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformed, len(buf))
	}
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, fmt.Errorf("%w: %v", ErrMalformed, r)
		}
	}()

	root := table{flatbuffers.Table{Bytes: buf, Pos: flatbuffers.GetUOffsetT(buf)}}
	s = &Snapshot{
		CurrentPlayer: root.getInt(snapshotCurrentPlayer),
		Phase:         root.getString(snapshotPhase),
		Stage:         root.getString(snapshotStage),
		LastRoll:      root.getInt(snapshotLastRoll),
		Robber:        root.getInt(snapshotRobber),
	}

	for _, v := range root.getTables(snapshotVertices) {
		s.Graph.Vertices = append(s.Graph.Vertices, Vertex{
			ID:       v.getInt(vertexID),
			X:        v.getInt(vertexX),
			Y:        v.getInt(vertexY),
			Owner:    v.getInt(vertexOwner),
			Building: v.getString(vertexBuilding),
		})
	}
	for _, e := range root.getTables(snapshotEdges) {
		s.Graph.Edges = append(s.Graph.Edges, Edge{
			A:     e.getInt(edgeA),
			B:     e.getInt(edgeB),
			Owner: e.getInt(edgeOwner),
		})
	}
	for _, p := range root.getTables(snapshotPlayers) {
		resources := make(map[string]int, game.NumResources)
		for r, n := range p.getInts(playerResources) {
			resources[game.Resource(r).String()] = n
		}
		s.Players = append(s.Players, Player{
			ID:            p.getInt(playerID),
			Color:         p.getString(playerColor),
			Resources:     resources,
			VictoryPoints: p.getInt(playerVictoryPoints),
			LongestRoad:   p.getBool(playerLongestRoad),
			RoadLength:    p.getInt(playerRoadLength),
		})
	}
	for _, h := range root.getTables(snapshotHexes) {
		s.Hexes = append(s.Hexes, Hex{
			ID:       h.getInt(hexID),
			X:        h.getInt(hexX),
			Y:        h.getInt(hexY),
			Kind:     h.getString(hexKind),
			Token:    h.getInt(hexToken),
			Vertices: h.getInts(hexVertices),
		})
	}
	return s, nil
}
