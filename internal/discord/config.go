package discord

// Config contains Discord bot settings.
type Config struct {
	Token    string `env:"DISCORD_TOKEN,required,notEmpty"`
	ClientID string `env:"CLIENT_ID,required,notEmpty"`
	// GuildID registers commands on one guild instead of globally; guild commands update instantly.
	GuildID  string `env:"DISCORD_GUILD_ID"`
	Activity string `env:"DISCORD_ACTIVITY" envDefault:"Chatting with Gemini AI"`
}
