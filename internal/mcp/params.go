package mcp

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"

	"github.com/peterkuimelis/duelcore/internal/game"
)

// ActionParams is the untyped action object accepted by execute_action.
// Enum fields are strings ("normal_summon", "face_up_attack", "graveyard").
type ActionParams struct {
	Type           string         `json:"type"`
	Player         *int           `json:"player"`
	HandIndex      int            `json:"hand_index"`
	Zone           int            `json:"zone"`
	Target         int            `json:"target"`
	Position       string         `json:"position"`
	Tributes       []int          `json:"tributes"`
	Source         string         `json:"source"`
	CardID         string         `json:"card_id"`
	GraveyardIndex int            `json:"graveyard_index"`
	BanishedIndex  int            `json:"banished_index"`
	Effect         string         `json:"effect"`
	Args           map[string]any `json:"args"`
}

// decode fills out from a tool argument map. Numbers may arrive as JSON
// floats or numeric strings.
func decode(input any, out any) error {
	decoderConfig := &mapstructure.DecoderConfig{
		DecodeHook:  stringToIntHookFunc(),
		Result:      out,
		TagName:     "json",
		ErrorUnused: true,
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

func stringToIntHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Kind, to reflect.Kind, data interface{}) (interface{}, error) {
		if from == reflect.String && (to == reflect.Int || to == reflect.Int64) {
			return strconv.Atoi(data.(string))
		}
		return data, nil
	}
}

// Action converts the params into a game action. defaultPlayer is used when
// no player is given.
func (p ActionParams) Action(defaultPlayer int) (game.Action, error) {
	t, err := game.ParseActionType(p.Type)
	if err != nil {
		return game.Action{}, err
	}
	a := game.Action{
		Type:           t,
		Player:         defaultPlayer,
		HandIndex:      p.HandIndex,
		Zone:           p.Zone,
		Target:         p.Target,
		Tributes:       p.Tributes,
		CardID:         p.CardID,
		GraveyardIndex: p.GraveyardIndex,
		BanishedIndex:  p.BanishedIndex,
		Effect:         p.Effect,
		Args:           p.Args,
	}
	if p.Player != nil {
		a.Player = *p.Player
	}
	if p.Position != "" {
		if a.Position, err = game.ParsePosition(p.Position); err != nil {
			return game.Action{}, err
		}
	}
	if p.Source != "" {
		if a.Source, err = game.ParseLocation(p.Source); err != nil {
			return game.Action{}, err
		}
	}
	return a, nil
}

// parseAction decodes and converts an execute_action argument.
func parseAction(raw any, defaultPlayer int) (game.Action, error) {
	var p ActionParams
	if err := decode(raw, &p); err != nil {
		return game.Action{}, fmt.Errorf("decode action: %w", err)
	}
	return p.Action(defaultPlayer)
}
