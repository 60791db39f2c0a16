package models

// Farm threshold parameter keys, stored as EAV rows per farm.
const (
	ConfigSuhuNormalMin          = "suhu_normal_min"
	ConfigSuhuNormalMax          = "suhu_normal_max"
	ConfigSuhuKritisRendah       = "suhu_kritis_rendah"
	ConfigSuhuKritisTinggi       = "suhu_kritis_tinggi"
	ConfigKelembapanNormalMin    = "kelembapan_normal_min"
	ConfigKelembapanNormalMax    = "kelembapan_normal_max"
	ConfigKelembapanKritisRendah = "kelembapan_kritis_rendah"
	ConfigKelembapanKritisTinggi = "kelembapan_kritis_tinggi"
	ConfigAmoniaMax              = "amonia_max"
	ConfigAmoniaKritis           = "amonia_kritis"
	ConfigBobotPertumbuhanMin    = "bobot_pertumbuhan_min"
	ConfigBobotTarget            = "bobot_target"
	ConfigPakanMin               = "pakan_min"
	ConfigMinumMin               = "minum_min"
	ConfigPopulasiAwal           = "populasi_awal"
	ConfigBobotAwal              = "bobot_awal"
	ConfigLuasKandang            = "luas_kandang"
)

var FarmConfigKeys = []string{
	ConfigSuhuNormalMin,
	ConfigSuhuNormalMax,
	ConfigSuhuKritisRendah,
	ConfigSuhuKritisTinggi,
	ConfigKelembapanNormalMin,
	ConfigKelembapanNormalMax,
	ConfigKelembapanKritisRendah,
	ConfigKelembapanKritisTinggi,
	ConfigAmoniaMax,
	ConfigAmoniaKritis,
	ConfigBobotPertumbuhanMin,
	ConfigBobotTarget,
	ConfigPakanMin,
	ConfigMinumMin,
	ConfigPopulasiAwal,
	ConfigBobotAwal,
	ConfigLuasKandang,
}

var farmConfigHumanName = map[string]string{
	ConfigSuhuNormalMin:          "Suhu normal minimum",
	ConfigSuhuNormalMax:          "Suhu normal maksimum",
	ConfigSuhuKritisRendah:       "Suhu kritis rendah",
	ConfigSuhuKritisTinggi:       "Suhu kritis tinggi",
	ConfigKelembapanNormalMin:    "Kelembapan normal minimum",
	ConfigKelembapanNormalMax:    "Kelembapan normal maksimum",
	ConfigKelembapanKritisRendah: "Kelembapan kritis rendah",
	ConfigKelembapanKritisTinggi: "Kelembapan kritis tinggi",
	ConfigAmoniaMax:              "Amonia maksimum",
	ConfigAmoniaKritis:           "Amonia kritis",
	ConfigBobotPertumbuhanMin:    "Pertumbuhan bobot minimum",
	ConfigBobotTarget:            "Target bobot",
	ConfigPakanMin:               "Pakan minimum",
	ConfigMinumMin:               "Minum minimum",
	ConfigPopulasiAwal:           "Populasi awal",
	ConfigBobotAwal:              "Bobot awal",
	ConfigLuasKandang:            "Luas kandang",
}

func FarmConfigKeyToHuman(key string) string {
	if human, exist := farmConfigHumanName[key]; exist {
		return human
	}
	return key
}

// BaselineFarmConfig - nilai untuk kandang yang belum pernah dikonfigurasi
var BaselineFarmConfig = map[string]float64{
	ConfigSuhuNormalMin:          28,
	ConfigSuhuNormalMax:          32,
	ConfigSuhuKritisRendah:       25,
	ConfigSuhuKritisTinggi:       35,
	ConfigKelembapanNormalMin:    60,
	ConfigKelembapanNormalMax:    70,
	ConfigKelembapanKritisRendah: 50,
	ConfigKelembapanKritisTinggi: 80,
	ConfigAmoniaMax:              20,
	ConfigAmoniaKritis:           30,
	ConfigBobotPertumbuhanMin:    100,
	ConfigBobotTarget:            2000,
	ConfigPakanMin:               50,
	ConfigMinumMin:               100,
	ConfigPopulasiAwal:           1000,
	ConfigBobotAwal:              40,
	ConfigLuasKandang:            100,
}

func CopyFarmConfig(values map[string]float64) map[string]float64 {
	result := make(map[string]float64, len(values))
	for k, v := range values {
		result[k] = v
	}
	return result
}
