package logger

const ScoreMsg = "P1 Score: %d, P2 Score: %d"

const ServeMsg = "Ball served %s"
const PaddleHitMsg = "%s hit the ball, speed coefficient %.1f"

const MatchStartMsg = "Match started, window %.0fx%.0f"
const MatchWinnerMsg = "%s wins %d:%d"
const MatchQuitMsg = "Match ended by player, score %d:%d"

const ScreenResizeMsg = "Screen resized to %dx%d cells"
const LogLevelReloadMsg = "Log level reloaded: %s"

const ConfigLoadedMsg = "Config %s loaded"
