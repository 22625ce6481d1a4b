package service

import "strings"

type scriptedReply struct {
	keyword string
	reply   string
}

// scriptedReplies is matched in order; the first keyword found in the
// message wins.
var scriptedReplies = []scriptedReply{
	{"stress", "I hear you're feeling stressed. Try taking 5 deep breaths, go for a short walk, or practice a grounding technique. What helps you relax?"},
	{"anxiety", "Anxiety can feel overwhelming. Some people find it helpful to break tasks into smaller steps. Would talking through what's worrying you help?"},
	{"sad", "I'm sorry you're feeling sad. It's okay to feel this way. Have you considered reaching out to someone you trust or a professional?"},
	{"lonely", "Loneliness is a tough feeling. Consider connecting with someone - even a quick call or text can help. You're not alone."},
	{"sleep", "Sleep is so important for mental health. Try establishing a bedtime routine, avoiding screens 1 hour before bed, and keeping your room cool and dark."},
	{"help", "I'm here to listen and support you. Tell me what's on your mind - what brought you here today?"},
	{"tired", "Feeling tired can sometimes be related to stress or burnout. Are you getting enough rest? What could help you recharge?"},
	{"coping", "Here are some coping strategies: breathing exercises, journaling, physical activity, creative expression, meditation, or talking to someone you trust."},
}

const defaultScriptedReply = "Thank you for sharing that with me. I'm here to listen and support you. " +
	"Can you tell me more about how you're feeling? Remember, it's okay to not be okay, " +
	"and seeking support is a sign of strength. 💚"

// fallbackReply picks the scripted answer for message. Matching is a
// case-insensitive substring search, so "stressful" matches "stress".
func fallbackReply(message string) string {
	lower := strings.ToLower(message)
	for _, r := range scriptedReplies {
		if strings.Contains(lower, r.keyword) {
			return r.reply
		}
	}
	return defaultScriptedReply
}
