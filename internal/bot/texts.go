// ABOUTME: Static user-facing texts for the informational commands.
// ABOUTME: Written in raw markdown; the delivery path escapes them.

package bot

import "fmt"

const analyzingText = "🔍 Analyzing the coin..."

const (
	errGeneric   = "❌ An error occurred while processing your request."
	errForbidden = "❌ I don't have permission to do that. Please check my permissions."
	errNoQuery   = "❌ please add a coin"
)

func startTextPrivate(firstName string) string {
	return fmt.Sprintf("👋 Welcome %s!\n\n", firstName) +
		"I'm your AI-powered crypto trading assistant. Here's what I can do:\n\n" +
		"🤖 *AI & Analysis*\n" +
		"• /crypto - Get AI-powered crypto analysis\n" +
		"• /technical - Get technical analysis\n" +
		"• /crypto_info - Get detailed coin information\n" +
		"• /confidence - Get AI confidence score\n" +
		"• /nostradamus - Learn about Nostradamus\n" +
		"• /price - Get recent price information\n" +
		"💡 *Utilities*\n" +
		"• /mode - Check current mode\n" +
		"• /stop_mode - Stop current mode\n\n" +
		"Type /help to see all commands!"
}

const startTextGroup = "👋 Hi everyone!\n\n" +
	"I'm a crypto trading bot with AI capabilities.\n" +
	"Use /help to see what I can do!"

const helpText = "🚀 *Available Commands* 📚\n\n" +
	"*Basic Commands*\n" +
	"• /start - Start the bot\n" +
	"• /help - Show this help message\n" +
	"• /about - About this bot\n" +
	"• /nostradamus - Learn about Nostradamus\n\n" +
	"*AI & Analysis*\n" +
	"• /crypto - Get AI-powered crypto analysis\n" +
	"• /technical - Get technical analysis\n" +
	"• /crypto_info - Get detailed coin information\n" +
	"• /confidence - Get AI confidence score\n" +
	"• /price - Get recent price information\n" +
	"*Utility Commands*\n" +
	"• /mode - Check current mode\n" +
	"• /stop_mode - Stop current mode\n\n" +
	"_Use the buttons below for quick access:_"

func aboutText(siteURL, coinURL string) string {
	return "🤖 *Crypto Trading Bot*\n\n" +
		"This bot helps you trade cryptocurrencies using advanced AI predictions " +
		"and market analysis.\n\n" +
		"*Features*:\n" +
		"• AI-powered trading signals\n" +
		"• Real-time market data\n\n" +
		"*Version*: v1.0.0\n" +
		fmt.Sprintf("*Website*: [Visit Here](%s)\n", siteURL) +
		fmt.Sprintf("*Coin*: [check this out](%s)\n\n", coinURL) +
		"*Disclaimer*: Trading cryptocurrencies involves substantial risk. " +
		"Always do your own research before making investment decisions."
}

const nostradamusText = "🤖 *Nostradamus*\n\n" +
	"Nostradamus is an AI-powered trading agent that provides actionable insights, " +
	"real-time chart evaluations, and data-driven recommendations " +
	"for smarter trading.\n\n" +
	"It leverages advanced machine learning and market data to analyze trends, " +
	"identify patterns, and helps traders stay ahead with informed decisions.\n" +
	"Trade with confidence."
