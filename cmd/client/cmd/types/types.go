package types

// ContextKey — тип ключей контекста CLI.
type ContextKey string

// ClientAppKey — ключ, под которым root-команда кладет *client.App в
// контекст дочерних команд.
const ClientAppKey ContextKey = "clientApp"
