package entity

// Boss describes one weekly boss and the meso value of its reward crystal.
type Boss struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Difficulty   string `json:"difficulty"`
	CrystalValue int64  `json:"crystalValue"`
}

// BossTable lists the bosses available to the crystal calculator.
// Crystal values track the in-game sale prices.
var BossTable = []Boss{
	{ID: "zakum_chaos", Name: "카오스 자쿰", Difficulty: "Chaos", CrystalValue: 9620000},
	{ID: "magnus_hard", Name: "하드 매그너스", Difficulty: "Hard", CrystalValue: 16740000},
	{ID: "hilla_hard", Name: "하드 힐라", Difficulty: "Hard", CrystalValue: 5520000},
	{ID: "papulatus_chaos", Name: "카오스 파풀라투스", Difficulty: "Chaos", CrystalValue: 16740000},
	{ID: "pierre_chaos", Name: "카오스 피에르", Difficulty: "Chaos", CrystalValue: 9620000},
	{ID: "vonbon_chaos", Name: "카오스 반반", Difficulty: "Chaos", CrystalValue: 9620000},
	{ID: "queen_chaos", Name: "카오스 퀸", Difficulty: "Chaos", CrystalValue: 9620000},
	{ID: "vellum_chaos", Name: "카오스 벨룸", Difficulty: "Chaos", CrystalValue: 9620000},
	{ID: "lotus_hard", Name: "하드 스우", Difficulty: "Hard", CrystalValue: 108150000},
	{ID: "damien_hard", Name: "하드 데미안", Difficulty: "Hard", CrystalValue: 108150000},
	{ID: "lucid_hard", Name: "하드 루시드", Difficulty: "Hard", CrystalValue: 168750000},
	{ID: "will_hard", Name: "하드 윌", Difficulty: "Hard", CrystalValue: 168750000},
	{ID: "gloom_hard", Name: "하드 글룸", Difficulty: "Hard", CrystalValue: 187500000},
	{ID: "verus_hilla_hard", Name: "하드 진힐라", Difficulty: "Hard", CrystalValue: 201600000},
	{ID: "darknell_hard", Name: "하드 듄켈", Difficulty: "Hard", CrystalValue: 201600000},
	{ID: "black_mage", Name: "검은 마법사", Difficulty: "Chaos", CrystalValue: 500000000},
	{ID: "seren_hard", Name: "하드 세렌", Difficulty: "Hard", CrystalValue: 252000000},
	{ID: "kalos_hard", Name: "하드 칼로스", Difficulty: "Hard", CrystalValue: 252000000},
}
