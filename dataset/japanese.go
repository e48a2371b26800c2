package dataset

import "github.com/poiesic/faqit/core"

// Japanese returns a fresh copy of the built-in Japanese corpus.
func Japanese() []*core.Entry {
	return []*core.Entry{
		{
			Locale:   core.LocaleJapanese,
			Question: "ビジュアルアルファは何をする会社ですか？",
			Answer: "ビジュアルアルファは、東京を拠点とするB2Bフィンテックスタートアップで、機関投資家やアセットマネージャーのデータ運用を革新する包括的なSaaSデータソリューションを提供しています。" +
				"当社のAI搭載プラットフォームは、複雑なデータ処理を自動化し、自動レポートを生成し、リアルタイムのポートフォリオモニタリング機能を提供します。" +
				"非構造化金融データを実用的な洞察に変換し、投資チームの手作業によるExcel作業を最大80%削減することを専門としています。" +
				"当社のソリューションは既存のシステムとシームレスに統合され、大規模な機関投資家のポートフォリオを管理するためのスケーラブルなインフラストラクチャを提供します。",
			Category:      "company_overview",
			ImagePath:     "images/company_overview.png",
			RelatedTopics: []string{"サービス", "テクノロジー", "自動化"},
			Keywords:      []string{"何をする", "事業", "会社概要"},
		},
		{
			Locale:   core.LocaleJapanese,
			Question: "ビジュアルアルファはいつ設立されましたか？",
			Answer: "ビジュアルアルファは、金融セクターのデジタルトランスフォーメーションが著しい時期の2019年12月に東京で設立されました。" +
				"設立以来、クライアントベースとテクノロジー機能の両面で急速な成長を遂げています。" +
				"当社は、機関投資運用においてより効率的で透明性が高く、自動化されたソリューションを創造するというビジョンから生まれました。" +
				"創業者たちは、投資運用とデータシステムにおける豊富な経験を活かし、日本市場における高度なフィンテックソリューションの需要の高まりに対応しています。",
			Category:      "company_history",
			ImagePath:     "images/company_timeline.png",
			RelatedTopics: []string{"設立", "成長", "東京"},
			Keywords:      []string{"設立", "創業", "歴史"},
		},
		{
			Locale:   core.LocaleJapanese,
			Question: "ビジュアルアルファのチームの規模はどのくらいですか？",
			Answer: "2025年現在、ビジュアルアルファは取締役、技術顧問、コアスタッフを含め、15-20名程度の高度なスキルを持つプロフェッショナルを雇用しています。" +
				"当社のチームは、フィンテック、データサイエンス、ソフトウェアエンジニアリング、金融サービスにわたる専門知識を持つ、多様で国際的な視野を持つ従業員で構成されています。" +
				"世界有数の金融機関、テクノロジー企業、コンサルティング会社での経験を持つチームメンバーと共に、効率的な組織構造を維持しています。" +
				"当社の文化は、イノベーション、継続的な学習、機関投資家クライアントへの卓越した価値提供を重視しています。",
			Category:      "team_info",
			ImagePath:     "images/team_structure.png",
			RelatedTopics: []string{"スタッフ", "専門知識", "企業文化"},
			Keywords:      []string{"チーム", "規模", "従業員", "スタッフ"},
		},
	}
}
