package services

import (
	"testing"

	"escrow-dashboard/internal/models"

	"github.com/stretchr/testify/suite"
)

type ChartServiceSuite struct {
	suite.Suite
	metrics *recordingMetrics
	service ChartServiceInterface
	data    models.ChartData
}

func (s *ChartServiceSuite) SetupTest() {
	s.metrics = newRecordingMetrics()
	s.service = NewChartService(s.metrics, DefaultLayoutRules())
	s.data = models.ChartData{
		Labels: []string{"2024-01", "2024-02", "2024-03", "2024-04", "2024-05"},
		Datasets: []models.ChartDataset{
			{Label: "ЖК Север", Data: []float64{1, 2, 3, 4, 5}},
			{Label: "ЖК Юг", Data: []float64{0, 1, 1, 2, 3}},
		},
	}
}

func TestChartServiceSuite(t *testing.T) {
	suite.Run(t, new(ChartServiceSuite))
}

func (s *ChartServiceSuite) TestDefaults() {
	cfg, err := s.service.Defaults("")
	s.Require().NoError(err)
	s.Equal(models.ChartTypeLine, cfg.Type)

	area, err := s.service.Defaults(models.ChartTypeArea)
	s.Require().NoError(err)
	s.True(area.Fill)

	_, err = s.service.Defaults("funnel")
	s.ErrorIs(err, ErrInvalidChartType)
}

func (s *ChartServiceSuite) TestCompile_Defaults() {
	compiled, err := s.service.Compile(nil, s.data, nil)

	s.Require().NoError(err)
	s.Equal(models.ChartTypeLine, compiled.Type)
	s.Equal(DefaultChartColors[0], compiled.Data.Datasets[0].BorderColor)
	s.Equal(DefaultChartColors[1], compiled.Data.Datasets[1].BorderColor)
	s.Empty(s.data.Datasets[0].BorderColor)
	s.True(compiled.Options.Plugins.Legend.Display)
	s.Equal("{y}", compiled.Options.Plugins.Tooltip.Template)
	s.Equal(400, compiled.Layout.Height)
	s.Equal(-30, compiled.Layout.XAxisAngle)
	s.Equal(1, s.metrics.counter("chart_compiled", map[string]string{"type": "line", "status": "success"}))
}

func (s *ChartServiceSuite) TestCompile_PatchAndOverrides() {
	patch := &models.ChartConfigurationPatch{
		Type:           ptr(models.ChartTypeArea),
		LegendPosition: ptr(models.LegendHidden),
		Dark:           ptr(true),
		TooltipFormat:  ptr("{label}: {y} млн ₽"),
	}
	overrides := map[string]any{
		"plugins": map[string]any{
			"tooltip": map[string]any{"borderWidth": 2},
		},
	}

	compiled, err := s.service.Compile(patch, s.data, overrides)

	s.Require().NoError(err)
	s.True(compiled.Config.Fill)
	s.False(compiled.Options.Plugins.Legend.Display)
	s.Equal(2, compiled.Options.Plugins.Tooltip.BorderWidth)
	s.Equal(DarkPalette.Green, compiled.Options.Plugins.Tooltip.BorderColor)
	s.Equal("Мар: 3 млн ₽", compiled.Options.Plugins.Tooltip.Format(3, "Мар"))
	s.Require().NotNil(compiled.Data.Datasets[0].Fill)
	s.True(*compiled.Data.Datasets[0].Fill)
}

func (s *ChartServiceSuite) TestCompile_InvalidConfiguration() {
	patch := &models.ChartConfigurationPatch{MarkerType: ptr("hexagon")}

	compiled, err := s.service.Compile(patch, s.data, nil)

	s.Nil(compiled)
	s.ErrorIs(err, ErrInvalidMarkerType)
	s.Equal(1, s.metrics.counter("chart_compiled", map[string]string{"type": "line", "status": "failed"}))
}

func (s *ChartServiceSuite) TestCompile_InvalidOverrides() {
	compiled, err := s.service.Compile(nil, s.data, map[string]any{"plugins": 1})

	s.Nil(compiled)
	s.ErrorIs(err, ErrInvalidOverrides)
}

func (s *ChartServiceSuite) TestCompile_EmptyData() {
	compiled, err := s.service.Compile(nil, models.ChartData{}, nil)

	s.Require().NoError(err)
	s.Empty(compiled.Data.Datasets)
	s.Equal(300, compiled.Layout.Height)
}
