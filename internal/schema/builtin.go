package schema

// 内置的九个仪器家族模式。
// 各家族的系数名映射来自厂商标定单中的标签与资产管理系统
// 约定的 CC_* 系数名之间的对应关系。

func ctdSchema() *Schema {
	return &Schema{
		Type:         "CTD",
		Formats:      []Format{FormatXMLCon, FormatKV},
		SerialPrefix: "16-",
		DateLayouts:  []string{"02-Jan-06", "02-Jan-2006"},
		Fields: []Field{
			// 温度
			{Name: "CC_a0", Keys: []string{"TA0"}, Kind: KindFloat, Required: true},
			{Name: "CC_a1", Keys: []string{"TA1"}, Kind: KindFloat, Required: true},
			{Name: "CC_a2", Keys: []string{"TA2"}, Kind: KindFloat, Required: true},
			{Name: "CC_a3", Keys: []string{"TA3"}, Kind: KindFloat, Required: true},
			// 电导率
			{Name: "CC_g", Keys: []string{"CG", "G"}, Kind: KindFloat, Required: true},
			{Name: "CC_h", Keys: []string{"CH", "H"}, Kind: KindFloat, Required: true},
			{Name: "CC_i", Keys: []string{"CI", "I"}, Kind: KindFloat, Required: true},
			{Name: "CC_j", Keys: []string{"CJ", "J"}, Kind: KindFloat, Required: true},
			{Name: "CC_cpcor", Keys: []string{"CPCOR"}, Kind: KindFloat},
			{Name: "CC_ctcor", Keys: []string{"CTCOR"}, Kind: KindFloat},
			// 压力
			{Name: "CC_pa0", Keys: []string{"PA0"}, Kind: KindFloat},
			{Name: "CC_pa1", Keys: []string{"PA1"}, Kind: KindFloat},
			{Name: "CC_pa2", Keys: []string{"PA2"}, Kind: KindFloat},
			{Name: "CC_ptempa0", Keys: []string{"PTEMPA0"}, Kind: KindFloat},
			{Name: "CC_ptempa1", Keys: []string{"PTEMPA1"}, Kind: KindFloat},
			{Name: "CC_ptempa2", Keys: []string{"PTEMPA2"}, Kind: KindFloat},
			{Name: "CC_ptca0", Keys: []string{"PTCA0"}, Kind: KindFloat},
			{Name: "CC_ptca1", Keys: []string{"PTCA1"}, Kind: KindFloat},
			{Name: "CC_ptca2", Keys: []string{"PTCA2"}, Kind: KindFloat},
			{Name: "CC_ptcb0", Keys: []string{"PTCB0"}, Kind: KindFloat},
			{Name: "CC_ptcb1", Keys: []string{"PTCB1"}, Kind: KindFloat},
			{Name: "CC_ptcb2", Keys: []string{"PTCB2"}, Kind: KindFloat},
			// O 系列附加系数
			{Name: "CC_C1", Keys: []string{"C1"}, Kind: KindFloat},
			{Name: "CC_C2", Keys: []string{"C2"}, Kind: KindFloat},
			{Name: "CC_C3", Keys: []string{"C3"}, Kind: KindFloat},
			{Name: "CC_D1", Keys: []string{"D1"}, Kind: KindFloat},
			{Name: "CC_D2", Keys: []string{"D2"}, Kind: KindFloat},
			{Name: "CC_T1", Keys: []string{"T1"}, Kind: KindFloat},
			{Name: "CC_T2", Keys: []string{"T2"}, Kind: KindFloat},
			{Name: "CC_T3", Keys: []string{"T3"}, Kind: KindFloat},
			{Name: "CC_T4", Keys: []string{"T4"}, Kind: KindFloat},
			{Name: "CC_T5", Keys: []string{"T5"}, Kind: KindFloat},
			// 氧传感器（仅 xmlcon 且带 OxygenSensor 节点时出现）
			{Name: "CC_residual_temperature_correction_factor_a", Keys: []string{"OXY_A"}, Kind: KindFloat},
			{Name: "CC_residual_temperature_correction_factor_b", Keys: []string{"OXY_B"}, Kind: KindFloat},
			{Name: "CC_residual_temperature_correction_factor_c", Keys: []string{"OXY_C"}, Kind: KindFloat},
			{Name: "CC_residual_temperature_correction_factor_e", Keys: []string{"OXY_E"}, Kind: KindFloat},
			{Name: "CC_oxygen_signal_slope", Keys: []string{"OXY_SOC"}, Kind: KindFloat},
			{Name: "CC_frequency_offset", Keys: []string{"OXY_OFFSET"}, Kind: KindFloat},
		},
	}
}

func dofstaSchema() *Schema {
	return &Schema{
		Type:         "DOFSTA",
		Formats:      []Format{FormatXMLCon, FormatKV},
		SerialPrefix: "43-",
		DateLayouts:  []string{"02-Jan-06", "02-Jan-2006"},
		Fields: []Field{
			{Name: "CC_oxygen_signal_slope", Keys: []string{"SOC", "OXY_SOC"}, Kind: KindFloat, Required: true},
			{Name: "CC_voltage_offset", Keys: []string{"VOFFSET", "OFFSET", "OXY_VOFFSET", "OXY_OFFSET"}, Kind: KindFloat, Required: true},
			// 历史字段名，与 CC_voltage_offset 同源
			{Name: "CC_frequency_offset", Keys: []string{"VOFFSET", "OFFSET", "OXY_VOFFSET", "OXY_OFFSET"}, Kind: KindFloat},
			{Name: "CC_residual_temperature_correction_factor_a", Keys: []string{"A", "OXY_A"}, Kind: KindFloat, Required: true},
			{Name: "CC_residual_temperature_correction_factor_b", Keys: []string{"B", "OXY_B"}, Kind: KindFloat, Required: true},
			{Name: "CC_residual_temperature_correction_factor_c", Keys: []string{"C", "OXY_C"}, Kind: KindFloat, Required: true},
			{Name: "CC_residual_temperature_correction_factor_e", Keys: []string{"E", "OXY_E"}, Kind: KindFloat, Required: true},
		},
	}
}

func nutnrSchema() *Schema {
	return &Schema{
		Type:        "NUTNRA",
		Formats:     []Format{FormatSUNA},
		FilePrefix:  "SNA",
		DateLayouts: []string{"02-Jan-2006", "02-Jan-06"},
		Fields: []Field{
			{Name: "CC_cal_temp", Keys: []string{"T_CAL", "T_CAL_SWA"}, Kind: KindFloat, Required: true},
			{Name: "CC_wl", Keys: []string{"wavelength"}, Kind: KindFloatArray, Required: true},
			{Name: "CC_eno3", Keys: []string{"eno3"}, Kind: KindFloatArray, Required: true},
			{Name: "CC_eswa", Keys: []string{"eswa"}, Kind: KindFloatArray, Required: true},
			{Name: "CC_di", Keys: []string{"di"}, Kind: KindFloatArray, Required: true},
			// 光谱拟合波长窗口为固定值
			{Name: "CC_lower_wavelength_limit_for_spectra_fit", Value: "217", Kind: KindInt},
			{Name: "CC_upper_wavelength_limit_for_spectra_fit", Value: "240", Kind: KindInt},
		},
	}
}

func optaaSchema() *Schema {
	return &Schema{
		Type:               "OPTAA",
		Formats:            []Format{FormatACS},
		SerialFromFilename: true,
		DateLayouts:        []string{"01/02/2006", "1/2/2006", "01/02/06", "02-Jan-06"},
		Fields: []Field{
			{Name: "CC_tcal", Keys: []string{"tcal"}, Kind: KindFloat, Required: true},
			{Name: "CC_cwlngth", Keys: []string{"cwlngth"}, Kind: KindFloatArray, Required: true},
			{Name: "CC_awlngth", Keys: []string{"awlngth"}, Kind: KindFloatArray, Required: true},
			{Name: "CC_ccwo", Keys: []string{"ccwo"}, Kind: KindFloatArray, Required: true},
			{Name: "CC_acwo", Keys: []string{"acwo"}, Kind: KindFloatArray, Required: true},
			{Name: "CC_tbins", Keys: []string{"tbins"}, Kind: KindFloatArray, Required: true},
			{Name: "CC_tcarray", Keys: []string{"tcarray"}, Kind: KindMatrix, Required: true},
			{Name: "CC_taarray", Keys: []string{"taarray"}, Kind: KindMatrix, Required: true},
		},
	}
}

func spkirSchema() *Schema {
	return &Schema{
		Type:        "SPKIRA",
		Formats:     []Format{FormatOCR},
		SerialTail:  true,
		DateLayouts: []string{"2006-01-02", "01/02/2006", "02-Jan-2006"},
		Fields: []Field{
			{Name: "CC_offset", Keys: []string{"offset"}, Kind: KindFloatArray, Required: true},
			{Name: "CC_scale", Keys: []string{"scale"}, Kind: KindFloatArray, Required: true},
			{Name: "CC_immersion_factor", Keys: []string{"immersion_factor"}, Kind: KindFloatArray, Required: true},
		},
	}
}

func florSchema() *Schema {
	return &Schema{
		Type:        "FLOR",
		Formats:     []Format{FormatECO},
		SerialTail:  true,
		DateLayouts: []string{"01/02/06", "01/02/2006"},
		Fields: []Field{
			{Name: "CC_scale_factor_volume_scatter", Keys: []string{"LAMBDA"}, Index: 1, Kind: KindFloat, Required: true},
			{Name: "CC_dark_counts_volume_scatter", Keys: []string{"LAMBDA"}, Index: 2, Kind: KindInt, Required: true},
			{Name: "CC_scale_factor_chlorophyll_a", Keys: []string{"CHL"}, Index: 1, Kind: KindFloat, Required: true},
			{Name: "CC_dark_counts_chlorophyll_a", Keys: []string{"CHL"}, Index: 2, Kind: KindInt, Required: true},
			{Name: "CC_scale_factor_cdom", Keys: []string{"CDOM"}, Index: 1, Kind: KindFloat, Required: true},
			{Name: "CC_dark_counts_cdom", Keys: []string{"CDOM"}, Index: 2, Kind: KindInt, Required: true},
		},
	}
}

func flntuaSchema() *Schema {
	return &Schema{
		Type:        "FLNTUA",
		Formats:     []Format{FormatECO},
		DateLayouts: []string{"01/02/06", "01/02/2006"},
		// NTU 标定单不含体散射系数，整体拒绝
		RejectKeys: []string{"NTU"},
		Fields: []Field{
			{Name: "CC_scale_factor_volume_scatter", Keys: []string{"LAMBDA"}, Index: 1, Kind: KindFloat, Required: true},
			{Name: "CC_dark_counts_volume_scatter", Keys: []string{"LAMBDA"}, Index: 2, Kind: KindInt, Required: true},
			{Name: "CC_scale_factor_chlorophyll_a", Keys: []string{"CHL"}, Index: 1, Kind: KindFloat, Required: true},
			{Name: "CC_dark_counts_chlorophyll_a", Keys: []string{"CHL"}, Index: 2, Kind: KindInt, Required: true},
			{Name: "CC_angular_resolution", Value: "1.096", Kind: KindFloat},
			{Name: "CC_depolarization_ratio", Value: "0.039", Kind: KindFloat},
			{Name: "CC_measurement_wavelength", Value: "700", Kind: KindInt},
			{Name: "CC_scattering_angle", Value: "140", Kind: KindInt},
		},
	}
}

func flcdraSchema() *Schema {
	return &Schema{
		Type:        "FLCDRA",
		Formats:     []Format{FormatECO},
		DateLayouts: []string{"01/02/2006", "01/02/06"},
		Fields: []Field{
			{Name: "CC_scale_factor_cdom", Keys: []string{"CDOM"}, Index: 1, Kind: KindFloat, Required: true},
			{Name: "CC_dark_counts_cdom", Keys: []string{"CDOM"}, Index: -1, Kind: KindInt, Required: true},
		},
	}
}

func paradaSchema() *Schema {
	return &Schema{
		Type:        "PARADA",
		Formats:     []Format{FormatECO},
		SerialTail:  true,
		DateLayouts: []string{"01/02/06", "01/02/2006"},
		Fields: []Field{
			{Name: "CC_Im", Keys: []string{"IM"}, Index: -1, Kind: KindFloat, Required: true},
			{Name: "CC_a0", Keys: []string{"A0"}, Index: -1, Kind: KindFloat, Required: true},
			{Name: "CC_a1", Keys: []string{"A1"}, Index: -1, Kind: KindFloat, Required: true},
		},
	}
}

// Builtin 返回包含全部内置家族的注册表
func Builtin() *Registry {
	r := NewRegistry()
	for _, s := range []*Schema{
		ctdSchema(),
		dofstaSchema(),
		nutnrSchema(),
		optaaSchema(),
		spkirSchema(),
		florSchema(),
		flntuaSchema(),
		flcdraSchema(),
		paradaSchema(),
	} {
		r.add(s)
	}
	return r
}
