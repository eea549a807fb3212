package core

import "time"

// DemoContexts returns the fixed demo corpus used to seed a brand-new user's
// collection. The five entries span positive and negative overall scores so
// retrieval and trend analysis have signal to work with before the user has
// written anything.
//
// The returned records are freshly allocated on every call; callers may
// mutate them (e.g. attach embeddings) without affecting later seedings.
func DemoContexts() []*ContextRecord {
	return []*ContextRecord{
		{
			Id:      "1",
			Content: "今日は新しいプロジェクトが始まって緊張したけど、チームメンバーが優しくて安心した。初日は色々覚えることが多くて大変だったが、やりがいを感じる。",
			Date:    time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
			Emotions: EmotionProfile{
				OverallScore:     3.5,
				DominantEmotions: []string{"緊張", "期待", "安心"},
				EmotionScores:    map[string]float64{"緊張": 0.4, "期待": 0.3, "安心": 0.3},
			},
			Keywords: []string{"プロジェクト", "チーム", "仕事", "新しい"},
			Type:     RecordTypeDiary,
		},
		{
			Id:      "2",
			Content: "週末に家族と過ごした時間が本当に幸せだった。子供の成長を感じて、時間の大切さを改めて実感した。",
			Date:    time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC),
			Emotions: EmotionProfile{
				OverallScore:     4.8,
				DominantEmotions: []string{"幸せ", "感動", "充実"},
				EmotionScores:    map[string]float64{"幸せ": 0.6, "感動": 0.3, "充実": 0.1},
			},
			Keywords: []string{"家族", "週末", "子供", "幸せ"},
			Type:     RecordTypeDiary,
		},
		{
			Id:      "3",
			Content: "プレゼンテーションがうまくいかなくて落ち込んだ。準備不足を痛感した。次はもっとしっかり準備しよう。",
			Date:    time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC),
			Emotions: EmotionProfile{
				OverallScore:     2.0,
				DominantEmotions: []string{"落胆", "反省", "決意"},
				EmotionScores:    map[string]float64{"落胆": 0.5, "反省": 0.3, "決意": 0.2},
			},
			Keywords: []string{"プレゼン", "仕事", "失敗", "学び"},
			Type:     RecordTypeDiary,
		},
		{
			Id:      "4",
			Content: "友人と久しぶりに会って、昔話に花が咲いた。学生時代を思い出して懐かしかった。",
			Date:    time.Date(2024, 8, 20, 0, 0, 0, 0, time.UTC),
			Emotions: EmotionProfile{
				OverallScore:     4.2,
				DominantEmotions: []string{"懐かしさ", "楽しさ", "友情"},
				EmotionScores:    map[string]float64{"懐かしさ": 0.4, "楽しさ": 0.4, "友情": 0.2},
			},
			Keywords: []string{"友人", "思い出", "懐かしい", "楽しい"},
			Type:     RecordTypeDiary,
		},
		{
			Id:      "5",
			Content: "運動を始めて1ヶ月。体調が良くなってきた気がする。習慣化することの大切さを実感。",
			Date:    time.Date(2024, 8, 25, 0, 0, 0, 0, time.UTC),
			Emotions: EmotionProfile{
				OverallScore:     4.0,
				DominantEmotions: []string{"達成感", "健康", "前向き"},
				EmotionScores:    map[string]float64{"達成感": 0.5, "健康": 0.3, "前向き": 0.2},
			},
			Keywords: []string{"運動", "健康", "習慣", "成長"},
			Type:     RecordTypeDiary,
		},
	}
}
