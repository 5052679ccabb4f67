// Package aggregator contém as funções puras que transformam registros já
// carregados do backend em janelas de período, séries por bucket, variações
// percentuais e rankings. Nenhuma função deste pacote faz I/O ou retorna erro:
// entradas vazias ou parciais produzem resultados zerados.
package aggregator
