package notifier

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/gabrielleitesep/Drivent4/internal/models"
)

type Notifier interface {
	NotifyBookingCreated(userID uint, booking models.Booking) error
	NotifyBookingMoved(userID uint, booking models.Booking) error
}

// DiscordNotifier posts booking activity to the ops channel. Notifications
// are best-effort: callers log failures and never surface them to clients.
type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

func (n *DiscordNotifier) NotifyBookingCreated(userID uint, booking models.Booking) error {
	message := fmt.Sprintf("🏨 **New Booking**\n**User:** %d\n**Room:** %d\n**Booking:** %d",
		userID, booking.RoomID, booking.ID)
	return n.send(message)
}

func (n *DiscordNotifier) NotifyBookingMoved(userID uint, booking models.Booking) error {
	message := fmt.Sprintf("🔁 **Booking Moved**\n**User:** %d\n**New Room:** %d\n**Booking:** %d",
		userID, booking.RoomID, booking.ID)
	return n.send(message)
}

func (n *DiscordNotifier) send(message string) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
