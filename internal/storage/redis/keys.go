package redis

import (
	"fmt"

	"github.com/gamesapx/gamesapx/internal/model"
)

// Key prefix for all platform data
const keyPrefix = "gamesapx"

// Key generation functions for each entity type

// userKey returns the Redis key for a User
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%d", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> user_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// emailIndexKey returns the Redis key for the email -> user_id index
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, email)
}

// userSeqKey returns the Redis key of the user ID sequence counter
func userSeqKey() string {
	return fmt.Sprintf("%s:seq:user", keyPrefix)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%d", keyPrefix, id)
}

// gameNameIndexKey returns the Redis key for the name -> game_id index
func gameNameIndexKey(name string) string {
	return fmt.Sprintf("%s:idx:game_name:%s", keyPrefix, name)
}

// gameOrderKey returns the Redis key of the LIST recording game insertion order
func gameOrderKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}

// gameSeqKey returns the Redis key of the game ID sequence counter
func gameSeqKey() string {
	return fmt.Sprintf("%s:seq:game", keyPrefix)
}

// scoreKey returns the Redis key for a Score
func scoreKey(id model.ScoreID) string {
	return fmt.Sprintf("%s:score:%d", keyPrefix, id)
}

// scoresForGameKey returns the Redis key of the LIST of score keys per game
func scoresForGameKey(gameID model.GameID) string {
	return fmt.Sprintf("%s:idx:scores_for_game:%d", keyPrefix, gameID)
}

// scoresForUserKey returns the Redis key of the LIST of score keys per user
func scoresForUserKey(userID model.UserID) string {
	return fmt.Sprintf("%s:idx:scores_for_user:%d", keyPrefix, userID)
}

// scoreSeqKey returns the Redis key of the score ID sequence counter
func scoreSeqKey() string {
	return fmt.Sprintf("%s:seq:score", keyPrefix)
}
