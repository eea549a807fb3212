package openai

const emotionAnalysisResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "overall_score": {
      "type": "number",
      "minimum": 1,
      "maximum": 5
    },
    "dominant_emotions": {
      "type": "array",
      "items": {"type": "string"},
      "maxItems": 3
    },
    "emotion_scores": {
      "type": "object",
      "additionalProperties": {"type": "number", "minimum": 0, "maximum": 1}
    },
    "keywords": {
      "type": "array",
      "items": {"type": "string"}
    }
  },
  "required": ["overall_score", "dominant_emotions", "emotion_scores", "keywords"],
  "additionalProperties": false
}`

const emotionAnalysisPrompt = `Analyze the emotional tone of the given diary entry and extract its key topics. The entry may be written in Japanese, English, or a mix of both.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

` + emotionAnalysisResponseSchema + `

Rules:
- overall_score rates the writer's mood from 1 (very negative) to 5 (very positive). 3 is neutral.
- dominant_emotions lists at most 3 emotion names in the language of the entry, strongest first.
- emotion_scores maps each dominant emotion to its relative strength between 0 and 1.
- keywords are the concrete topics of the entry (people, places, activities), not emotion words. Keep them in the entry's language.
- Do not invent topics or emotions that the entry does not support.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "今日は新しいプロジェクトが始まって、少し緊張したけど楽しかった。"
Output:
{
  "overall_score": 4,
  "dominant_emotions": ["楽しい", "緊張"],
  "emotion_scores": {"楽しい": 0.8, "緊張": 0.5},
  "keywords": ["プロジェクト", "仕事"]
}

Example:
Input: "slept badly again, everything feels heavy"
Output:
{
  "overall_score": 2,
  "dominant_emotions": ["exhaustion", "sadness"],
  "emotion_scores": {"exhaustion": 0.9, "sadness": 0.6},
  "keywords": ["sleep"]
}`

const dialogueSystemPrompt = `あなたは共感的な日記の対話パートナーです。ユーザーの記録に寄り添い、気持ちを受け止めた上で、短い返答と自然な問いかけを返してください。

Rules:
- Respond in the same language as the user's entry.
- Keep responses to 2-3 sentences.
- Acknowledge the feeling first, then ask one gentle follow-up question.
- Never give medical advice or diagnoses.`
