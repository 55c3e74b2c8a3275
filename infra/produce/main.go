package produce

import amqp "github.com/rabbitmq/amqp091-go"

type Produce struct {
	CompanyEvents *CompanyEventService
}

var produceInstance *Produce

func InitProduce(channel *amqp.Channel) *Produce {
	if produceInstance != nil {
		return produceInstance
	}

	companyEvents := InitCompanyEventService(channel)
	if companyEvents == nil {
		panic("Failed to initialize company event service")
	}

	produceInstance = &Produce{
		CompanyEvents: companyEvents,
	}

	return produceInstance
}
